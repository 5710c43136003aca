package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/SolomonAgyire/Gallery/controllers/user"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", userControllers.Signup(deps.Auth, deps.JWTSecret))
		authGroup.POST("/login", userControllers.Login(deps.Auth, deps.JWTSecret))
		authGroup.POST("/logout", userControllers.Logout(deps.Auth))
		authGroup.POST("/reset-password", userControllers.ResetPassword(deps.Auth))
	}
}
