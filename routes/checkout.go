package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/SolomonAgyire/Gallery/controllers/checkout"
)

// SetupCheckoutRoutes registers the payment-processor proxy endpoint.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	r.POST("/api/create-checkout-session",
		checkoutControllers.CreateCheckoutSession(deps.Sessions, deps.StripeKey))
}
