package checkoutControllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"

	"github.com/SolomonAgyire/Gallery/models"
)

const defaultOrigin = "http://localhost:5173"

// SessionCreator mints a checkout session with the payment processor.
// Wrapped in an interface so tests can fake the processor.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeSessions struct{}

func (stripeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// StripeSessions returns the live processor client. stripe.Key must be set
// before the first call.
func StripeSessions() SessionCreator { return stripeSessions{} }

type checkoutInput struct {
	Cart []models.CartItem `json:"cart"`
}

// POST /api/create-checkout-session
func CreateCheckoutSession(sessions SessionCreator, secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input checkoutInput
		if err := c.ShouldBindJSON(&input); err != nil || len(input.Cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart data"})
			return
		}

		for _, item := range input.Cart {
			if item.Title == "" || item.Price <= 0 {
				log.Error().Str("id", item.ID).Msg("invalid cart item in checkout request")
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item data"})
				return
			}
		}

		if secretKey == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe configuration error"})
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = defaultOrigin
		}

		lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.Cart))
		for _, item := range input.Cart {
			product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Title),
			}
			if item.Dimensions != "" && item.Medium != "" {
				product.Description = stripe.String(item.Dimensions + " - " + item.Medium)
			}

			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}

			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String("usd"),
					ProductData: product,
					// Convert to the smallest currency unit.
					UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
				},
				Quantity: stripe.Int64(int64(quantity)),
			})
		}

		params := &stripe.CheckoutSessionParams{
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems:          lineItems,
			Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
			SuccessURL:         stripe.String(origin + "/cart?success=true"),
			CancelURL:          stripe.String(origin + "/cart?canceled=true"),
		}

		sess, err := sessions.Create(params)
		if err != nil {
			log.Error().Err(err).Msg("failed to create checkout session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		log.Info().Str("session_id", sess.ID).Msg("checkout session created")
		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	}
}
