package store

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/SolomonAgyire/Gallery/models"
	"github.com/SolomonAgyire/Gallery/storage"
)

// ThemeApplier mirrors the dark-mode flag onto whatever renders the UI, the
// way the browser build toggles a class on the document root.
type ThemeApplier func(dark bool)

// AppStore is the single source of truth for the cart, favorites and theme.
// Every mutation persists the complete updated collection synchronously.
type AppStore struct {
	mu         sync.Mutex
	st         storage.Storage
	cart       []models.CartItem
	favorites  []string
	darkMode   bool
	applyTheme ThemeApplier
}

// New hydrates an AppStore from previously persisted state. Missing keys fall
// back to empty defaults. A value that fails to parse also hydrates to the
// empty default; the corrupt value stays in storage until the next write
// replaces it.
func New(st storage.Storage, applyTheme ThemeApplier) *AppStore {
	s := &AppStore{st: st, applyTheme: applyTheme}
	if s.applyTheme == nil {
		s.applyTheme = func(dark bool) {
			log.Debug().Bool("dark", dark).Msg("theme applied")
		}
	}
	if raw, ok, _ := st.GetItem(storage.KeyCart); ok {
		_ = json.Unmarshal([]byte(raw), &s.cart)
	}
	if raw, ok, _ := st.GetItem(storage.KeyFavorites); ok {
		_ = json.Unmarshal([]byte(raw), &s.favorites)
	}
	if raw, ok, _ := st.GetItem(storage.KeyDarkMode); ok {
		_ = json.Unmarshal([]byte(raw), &s.darkMode)
	}
	s.applyTheme(s.darkMode)
	return s
}

// AddToCart appends the artwork with quantity 1, or increments the quantity
// if it is already in the cart. No upper bound is enforced at this layer.
func (s *AppStore) AddToCart(art models.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == art.ID {
			s.cart[i].Quantity++
			s.persistCart()
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{Artwork: art, Quantity: 1})
	s.persistCart()
}

// RemoveFromCart drops the matching entry. Removing an absent id is a no-op.
func (s *AppStore) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persistCart()
}

// UpdateQuantity sets the quantity for the matching entry. The 1-10 bound is
// enforced by the calling handlers, not here.
func (s *AppStore) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
		}
	}
	s.persistCart()
}

// ClearCart empties the cart, e.g. after a completed checkout.
func (s *AppStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = make([]models.CartItem, 0)
	s.persistCart()
}

// Cart returns a copy of the current cart contents.
func (s *AppStore) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// IsInCart reports whether the artwork is already in the cart.
func (s *AppStore) IsInCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.cart {
		if item.ID == id {
			return true
		}
	}
	return false
}

// CartTotal is the derived sum of price times quantity over the cart. It is
// recomputed on demand and never persisted.
func (s *AppStore) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// AddToFavorites adds the id to the favorite set. Adding a present id is
// idempotent.
func (s *AppStore) AddToFavorites(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fav := range s.favorites {
		if fav == id {
			return
		}
	}
	s.favorites = append(s.favorites, id)
	s.persistFavorites()
}

// RemoveFromFavorites drops the id from the favorite set, no-op if absent.
func (s *AppStore) RemoveFromFavorites(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.favorites))
	for _, fav := range s.favorites {
		if fav != id {
			kept = append(kept, fav)
		}
	}
	s.favorites = kept
	s.persistFavorites()
}

// IsFavorite reports whether the id is in the favorite set.
func (s *AppStore) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// Favorites returns a copy of the favorite ids.
func (s *AppStore) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// DarkMode reports the current theme flag.
func (s *AppStore) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// ToggleDarkMode flips the theme flag, persists it and re-applies the theme.
func (s *AppStore) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
	s.persist(storage.KeyDarkMode, s.darkMode)
	s.applyTheme(s.darkMode)
	return s.darkMode
}

func (s *AppStore) persistCart()      { s.persist(storage.KeyCart, s.cart) }
func (s *AppStore) persistFavorites() { s.persist(storage.KeyFavorites, s.favorites) }

func (s *AppStore) persist(key string, v interface{}) {
	data, _ := json.Marshal(v)
	if err := s.st.SetItem(key, string(data)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to persist state")
	}
}
