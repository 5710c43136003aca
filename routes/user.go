package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/SolomonAgyire/Gallery/controllers/user"
	"github.com/SolomonAgyire/Gallery/middleware"
)

// SetupUserRoutes registers the "/user/*" endpoints. Requires a session token.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		userGroup.GET("/", userControllers.GetProfile(deps.Auth))
		userGroup.PUT("/", userControllers.UpdateProfile(deps.Auth))
		userGroup.POST("/send-verification-email", userControllers.SendVerificationEmail(deps.Auth))
		userGroup.POST("/verify-email", userControllers.VerifyEmail(deps.Auth))
	}
}
