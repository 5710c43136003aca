package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SolomonAgyire/Gallery/data"
	"github.com/SolomonAgyire/Gallery/store"
)

type AddCartInput struct {
	ArtworkID string `json:"artwork_id" binding:"required"`
}

// The 1-10 quantity bound lives here, on the handler input, not in the store.
type QuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

func cartResponse(s *store.AppStore) gin.H {
	return gin.H{"items": s.Cart(), "total": s.CartTotal()}
}

// GET /cart
func GetCart(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(s))
	}
}

// POST /cart
func AddToCart(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		art, ok := data.ByID(input.ArtworkID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork does not exist"})
			return
		}

		s.AddToCart(art)
		c.JSON(http.StatusCreated, cartResponse(s))
	}
}

// PUT /cart/:artwork_id
func UpdateCartQuantity(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		artworkID := c.Param("artwork_id")

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !s.IsInCart(artworkID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		s.UpdateQuantity(artworkID, input.Quantity)
		c.JSON(http.StatusOK, cartResponse(s))
	}
}

// DELETE /cart/:artwork_id
func RemoveFromCart(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		artworkID := c.Param("artwork_id")

		if !s.IsInCart(artworkID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		s.RemoveFromCart(artworkID)
		c.JSON(http.StatusOK, cartResponse(s))
	}
}

// DELETE /cart
func ClearCart(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /favorites
func GetFavorites(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"favorites": s.Favorites()})
	}
}

// POST /favorites
func AddToFavorites(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, ok := data.ByID(input.ArtworkID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork does not exist"})
			return
		}

		s.AddToFavorites(input.ArtworkID)
		c.JSON(http.StatusOK, gin.H{"favorites": s.Favorites()})
	}
}

// DELETE /favorites/:artwork_id
func RemoveFromFavorites(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.RemoveFromFavorites(c.Param("artwork_id"))
		c.JSON(http.StatusOK, gin.H{"favorites": s.Favorites()})
	}
}

// GET /theme
func GetTheme(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"darkMode": s.DarkMode()})
	}
}

// POST /theme/toggle
func ToggleTheme(s *store.AppStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"darkMode": s.ToggleDarkMode()})
	}
}
