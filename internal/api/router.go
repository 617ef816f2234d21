package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/app"
	iauth "github.com/calebsoh/menucard/internal/auth"
	"github.com/calebsoh/menucard/internal/handlers"
	"github.com/calebsoh/menucard/internal/middleware"
	"github.com/calebsoh/menucard/internal/services"
	"github.com/calebsoh/menucard/pkg/mail"
)

// NewRouter builds the Gin engine, wires middleware and registers routes.
func NewRouter(db *gorm.DB, cfg *app.Config, mailer mail.Mailer) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer must be provided")
	}

	sessions, err := iauth.NewSessionService(db, iauth.SessionConfig{
		Production: cfg.Server.IsProduction(),
	})
	if err != nil {
		return nil, err
	}

	verification, err := services.NewVerificationService(db, mailer)
	if err != nil {
		return nil, err
	}
	accounts, err := services.NewAccountService(db, verification)
	if err != nil {
		return nil, err
	}
	restaurants, err := services.NewRestaurantService(db)
	if err != nil {
		return nil, err
	}
	categories, err := services.NewCategoryService(db)
	if err != nil {
		return nil, err
	}
	dishes, err := services.NewDishService(db)
	if err != nil {
		return nil, err
	}
	menus, err := services.NewMenuService(db, cfg.Server.BaseURL)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.PageGuard())

	// Ops endpoints (public)
	r.GET("/health", handlers.Health())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(r, accounts, verification, sessions)
	registerRestaurantRoutes(r, sessions, restaurants, categories, dishes)
	registerMenuRoutes(r, menus)

	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
