package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebsoh/menucard/internal/services"
	appErrors "github.com/calebsoh/menucard/pkg/errors"
	"github.com/calebsoh/menucard/pkg/response"
)

// RestaurantHandler manages an owner's restaurants.
type RestaurantHandler struct {
	restaurants *services.RestaurantService
}

func NewRestaurantHandler(restaurants *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

type restaurantRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	restaurants, err := h.restaurants.ListByOwner(requestContext(c), user.ID)
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.JSON(c, http.StatusOK, restaurants)
}

// POST /api/restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req restaurantRequest
	if !bindAndValidate(c, &req) {
		return
	}

	restaurant, err := h.restaurants.Create(requestContext(c), user.ID, req.Name, req.Location)
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.JSON(c, http.StatusCreated, restaurant)
}

// GET /api/restaurants/:id
func (h *RestaurantHandler) Get(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	restaurant, err := h.restaurants.GetOwned(requestContext(c), c.Param("id"), user.ID)
	if err != nil {
		response.Error(c, ownershipError(err))
		return
	}

	response.JSON(c, http.StatusOK, restaurant)
}

// ownershipError maps restaurant access failures onto client-facing errors.
// Missing and foreign restaurants both read as 403 so ids cannot be probed.
func ownershipError(err error) error {
	if errors.Is(err, services.ErrNotOwner) {
		return appErrors.ErrForbidden.WithMessage("You do not own this restaurant")
	}
	return appErrors.ErrInternalServer.WithInternal(err)
}
