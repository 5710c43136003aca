package artworkControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SolomonAgyire/Gallery/data"
)

// GET /api/artworks
func GetArtworks() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, data.Catalog)
	}
}

// GET /api/artworks/:id
func GetArtworkByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		art, ok := data.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusOK, art)
	}
}

// GET /api/featured
func GetFeaturedArtworks() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, data.Featured())
	}
}
