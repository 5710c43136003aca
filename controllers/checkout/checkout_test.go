package checkoutControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"
)

type fakeSessions struct {
	params *stripe.CheckoutSessionParams
	sess   *stripe.CheckoutSession
	err    error
}

func (f *fakeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	return f.sess, f.err
}

func performCheckout(t *testing.T, sessions SessionCreator, secretKey, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/create-checkout-session", CreateCheckoutSession(sessions, secretKey))

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	fake := &fakeSessions{sess: &stripe.CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.example/cs_test_123",
	}}

	body := `{"cart":[{"id":"1","title":"Sunset Horizon","price":1200.5,"dimensions":"24\" x 36\"","medium":"Oil on canvas","quantity":2}]}`
	w := performCheckout(t, fake, "sk_test_abc", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.example/cs_test_123", resp["url"])

	require.NotNil(t, fake.params)
	require.Len(t, fake.params.LineItems, 1)
	li := fake.params.LineItems[0]
	assert.Equal(t, int64(2), *li.Quantity)
	// Price converted to cents, rounded.
	assert.Equal(t, int64(120050), *li.PriceData.UnitAmount)
	assert.Equal(t, "usd", *li.PriceData.Currency)
	assert.Equal(t, "Sunset Horizon", *li.PriceData.ProductData.Name)
	assert.Equal(t, `24" x 36" - Oil on canvas`, *li.PriceData.ProductData.Description)
	assert.Equal(t, "payment", *fake.params.Mode)
}

func TestCreateCheckoutSessionDefaultsQuantityAndOrigin(t *testing.T) {
	fake := &fakeSessions{sess: &stripe.CheckoutSession{URL: "https://checkout.example/x"}}

	body := `{"cart":[{"id":"1","title":"Sunset Horizon","price":100}]}`
	w := performCheckout(t, fake, "sk_test_abc", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), *fake.params.LineItems[0].Quantity)
	assert.Equal(t, "http://localhost:5173/cart?success=true", *fake.params.SuccessURL)
	assert.Equal(t, "http://localhost:5173/cart?canceled=true", *fake.params.CancelURL)
	// Description omitted when dimensions or medium are missing.
	assert.Nil(t, fake.params.LineItems[0].PriceData.ProductData.Description)
}

func TestCreateCheckoutSessionRejectsEmptyCart(t *testing.T) {
	for _, body := range []string{`{}`, `{"cart":[]}`, `not json`} {
		w := performCheckout(t, &fakeSessions{}, "sk_test_abc", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Equal(t, "Invalid cart data", errorBody(t, w))
	}
}

func TestCreateCheckoutSessionRejectsInvalidItem(t *testing.T) {
	for _, body := range []string{
		`{"cart":[{"id":"1","price":100}]}`,
		`{"cart":[{"id":"1","title":"No Price"}]}`,
		`{"cart":[{"id":"1","title":"Negative","price":-5}]}`,
	} {
		w := performCheckout(t, &fakeSessions{}, "sk_test_abc", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Equal(t, "Invalid item data", errorBody(t, w))
	}
}

func TestCreateCheckoutSessionMissingSecretKey(t *testing.T) {
	body := `{"cart":[{"id":"1","title":"Sunset Horizon","price":100}]}`
	w := performCheckout(t, &fakeSessions{}, "", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Stripe configuration error", errorBody(t, w))
}

func TestCreateCheckoutSessionProcessorFailure(t *testing.T) {
	fake := &fakeSessions{err: errors.New("stripe: rate limited")}

	body := `{"cart":[{"id":"1","title":"Sunset Horizon","price":100}]}`
	w := performCheckout(t, fake, "sk_test_abc", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "stripe: rate limited", errorBody(t, w))
}
