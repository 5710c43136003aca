package routes

import (
	"github.com/gin-gonic/gin"

	artworkControllers "github.com/SolomonAgyire/Gallery/controllers/artwork"
	cartControllers "github.com/SolomonAgyire/Gallery/controllers/cart"
)

// SetupStoreRoutes registers the catalog plus the session-scoped cart,
// favorites and theme endpoints.
func SetupStoreRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")
	{
		api.GET("/artworks", artworkControllers.GetArtworks())
		api.GET("/artworks/:id", artworkControllers.GetArtworkByID())
		api.GET("/featured", artworkControllers.GetFeaturedArtworks())
	}

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.App))
		cartGroup.POST("/", cartControllers.AddToCart(deps.App))
		cartGroup.PUT("/:artwork_id", cartControllers.UpdateCartQuantity(deps.App))
		cartGroup.DELETE("/:artwork_id", cartControllers.RemoveFromCart(deps.App))
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.App))
	}

	favGroup := r.Group("/favorites")
	{
		favGroup.GET("/", cartControllers.GetFavorites(deps.App))
		favGroup.POST("/", cartControllers.AddToFavorites(deps.App))
		favGroup.DELETE("/:artwork_id", cartControllers.RemoveFromFavorites(deps.App))
	}

	themeGroup := r.Group("/theme")
	{
		themeGroup.GET("/", cartControllers.GetTheme(deps.App))
		themeGroup.POST("/toggle", cartControllers.ToggleTheme(deps.App))
	}
}
