package api

import (
	"github.com/gin-gonic/gin"

	iauth "github.com/calebsoh/menucard/internal/auth"
	"github.com/calebsoh/menucard/internal/handlers"
	"github.com/calebsoh/menucard/internal/middleware"
	"github.com/calebsoh/menucard/internal/services"
)

func registerRestaurantRoutes(r *gin.Engine, sessions *iauth.SessionService, restaurants *services.RestaurantService, categories *services.CategoryService, dishes *services.DishService) {
	restaurantHandler := handlers.NewRestaurantHandler(restaurants)
	categoryHandler := handlers.NewCategoryHandler(restaurants, categories)
	dishHandler := handlers.NewDishHandler(restaurants, dishes)

	// Category listing is public: menu clients render sections without a
	// session. Everything else is owner-only.
	r.GET("/api/restaurants/:id/categories", categoryHandler.List)

	requireSession := middleware.RequireSession(sessions)

	owned := r.Group("/api/restaurants")
	owned.Use(requireSession)
	{
		owned.GET("", restaurantHandler.List)
		owned.POST("", restaurantHandler.Create)
		owned.GET("/:id", restaurantHandler.Get)

		owned.POST("/:id/categories", categoryHandler.Create)
		owned.GET("/:id/categories/:categoryId", categoryHandler.Get)
		owned.PUT("/:id/categories/:categoryId", categoryHandler.Update)
		owned.DELETE("/:id/categories/:categoryId", categoryHandler.Delete)

		owned.POST("/:id/dishes", dishHandler.Create)
		owned.GET("/:id/dishes/:dishId", dishHandler.Get)
		owned.PUT("/:id/dishes/:dishId", dishHandler.Update)
		owned.DELETE("/:id/dishes/:dishId", dishHandler.Delete)
	}
}
