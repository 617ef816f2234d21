package api

import (
	"github.com/gin-gonic/gin"

	iauth "github.com/calebsoh/menucard/internal/auth"
	"github.com/calebsoh/menucard/internal/handlers"
	"github.com/calebsoh/menucard/internal/services"
)

func registerAuthRoutes(r *gin.Engine, accounts *services.AccountService, verification *services.VerificationService, sessions *iauth.SessionService) {
	authHandler := handlers.NewAuthHandler(accounts, verification, sessions)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/request-code", authHandler.RequestCode)
		auth.POST("/verify", authHandler.Verify)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}
