package checkout

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/SolomonAgyire/Gallery/models"
)

// Error is surfaced to the user when the proxy or the network fails.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Navigate performs the full-page redirect to the payment page. Injectable
// so tests and non-browser callers can capture the URL instead.
type Navigate func(url string) error

// Client hands the cart off to the checkout proxy.
type Client struct {
	baseURL string
	http    *http.Client
	nav     Navigate
}

func NewClient(baseURL string, nav Navigate) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		nav:     nav,
	}
}

// Checkout serializes the cart, asks the proxy for a checkout session and
// navigates to the returned URL. One attempt per call, no retry.
func (c *Client) Checkout(items []models.CartItem) error {
	body, _ := json.Marshal(map[string]interface{}{"cart": items})

	resp, err := c.http.Post(
		c.baseURL+"/api/create-checkout-session",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return &Error{Message: "Failed to create checkout session", Err: err}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &e)
		if e.Error == "" {
			e.Error = "Failed to create checkout session"
		}
		return &Error{Message: e.Error}
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &out); err != nil || out.URL == "" {
		return &Error{Message: "checkout session response missing url", Err: err}
	}
	return c.nav(out.URL)
}
