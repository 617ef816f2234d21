package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebsoh/menucard/internal/services"
	appErrors "github.com/calebsoh/menucard/pkg/errors"
	"github.com/calebsoh/menucard/pkg/response"
)

// MenuHandler serves the public menu and its QR code. No session required;
// guests reach these endpoints straight from a scanned table tent.
type MenuHandler struct {
	menus *services.MenuService
}

func NewMenuHandler(menus *services.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// GET /api/menu/:id
func (h *MenuHandler) Get(c *gin.Context) {
	menu, err := h.menus.GetMenu(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, menuError(err))
		return
	}

	response.JSON(c, http.StatusOK, menu)
}

// GET /api/menu/:id/qr
func (h *MenuHandler) QRCode(c *gin.Context) {
	png, err := h.menus.QRCode(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, menuError(err))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func menuError(err error) error {
	if errors.Is(err, services.ErrRestaurantNotFound) {
		return appErrors.ErrNotFound.WithMessage("Restaurant not found")
	}
	return appErrors.ErrInternalServer.WithInternal(err)
}
