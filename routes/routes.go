package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SolomonAgyire/Gallery/auth"
	checkoutControllers "github.com/SolomonAgyire/Gallery/controllers/checkout"
	"github.com/SolomonAgyire/Gallery/store"
)

// Deps carries everything the route groups need.
type Deps struct {
	App       *store.AppStore
	Auth      *auth.Store
	Sessions  checkoutControllers.SessionCreator
	JWTSecret string
	StripeKey string
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Profile routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Storefront: catalog, cart, favorites, theme
	SetupStoreRoutes(r, deps)

	// Checkout proxy
	SetupCheckoutRoutes(r, deps)
}
