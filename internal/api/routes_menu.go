package api

import (
	"github.com/gin-gonic/gin"

	"github.com/calebsoh/menucard/internal/handlers"
	"github.com/calebsoh/menucard/internal/services"
)

func registerMenuRoutes(r *gin.Engine, menus *services.MenuService) {
	menuHandler := handlers.NewMenuHandler(menus)

	menu := r.Group("/api/menu")
	{
		menu.GET("/:id", menuHandler.Get)
		menu.GET("/:id/qr", menuHandler.QRCode)
	}
}
