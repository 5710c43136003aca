package models

// Artwork is a single gallery piece from the catalog.
type Artwork struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Dimensions  string  `json:"dimensions,omitempty"`
	Medium      string  `json:"medium,omitempty"`
	Year        string  `json:"year,omitempty"`
}

// CartItem is an artwork in the cart together with its purchase quantity.
// At most one CartItem exists per artwork id.
type CartItem struct {
	Artwork
	Quantity int `json:"quantity"`
}
