package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomonAgyire/Gallery/models"
	"github.com/SolomonAgyire/Gallery/storage"
)

func testArtwork(id string, price float64) models.Artwork {
	return models.Artwork{ID: id, Title: "Artwork " + id, Artist: "Tester", Price: price}
}

func TestAddToCartIncrementsExistingItem(t *testing.T) {
	s := New(storage.NewMemory(), func(bool) {})

	art := testArtwork("1", 100)
	s.AddToCart(art)
	s.AddToCart(art)
	s.AddToCart(art)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "1", cart[0].ID)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestCartTotalFollowsMutations(t *testing.T) {
	s := New(storage.NewMemory(), func(bool) {})

	art := testArtwork("1", 100)
	s.AddToCart(art)
	s.AddToCart(art)
	assert.Equal(t, 200.0, s.CartTotal())

	s.UpdateQuantity("1", 5)
	assert.Equal(t, 500.0, s.CartTotal())

	s.RemoveFromCart("1")
	assert.Empty(t, s.Cart())
	assert.Equal(t, 0.0, s.CartTotal())
}

func TestAddThenRemoveRestoresPriorTotal(t *testing.T) {
	s := New(storage.NewMemory(), func(bool) {})

	s.AddToCart(testArtwork("1", 1200))
	before := s.CartTotal()

	s.AddToCart(testArtwork("2", 950))
	s.RemoveFromCart("2")

	assert.Equal(t, before, s.CartTotal())
}

func TestRemoveFromCartAbsentIDIsNoOp(t *testing.T) {
	s := New(storage.NewMemory(), func(bool) {})
	s.AddToCart(testArtwork("1", 100))

	s.RemoveFromCart("does-not-exist")

	require.Len(t, s.Cart(), 1)
}

func TestUpdateQuantityDoesNotEnforceBounds(t *testing.T) {
	s := New(storage.NewMemory(), func(bool) {})
	s.AddToCart(testArtwork("1", 100))

	// The 1-10 bound lives in the HTTP handlers, not here.
	s.UpdateQuantity("1", 50)

	assert.Equal(t, 50, s.Cart()[0].Quantity)
	assert.Equal(t, 5000.0, s.CartTotal())
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	s := New(storage.NewMemory(), func(bool) {})

	s.AddToFavorites("7")
	s.AddToFavorites("7")

	assert.Equal(t, []string{"7"}, s.Favorites())
	assert.True(t, s.IsFavorite("7"))

	s.RemoveFromFavorites("7")
	assert.Empty(t, s.Favorites())
	assert.False(t, s.IsFavorite("7"))
}

func TestMutationsPersistSynchronously(t *testing.T) {
	mem := storage.NewMemory()
	s := New(mem, func(bool) {})

	s.AddToCart(testArtwork("1", 100))
	s.AddToFavorites("1")

	raw, ok, err := mem.GetItem(storage.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	raw, ok, err = mem.GetItem(storage.KeyFavorites)
	require.NoError(t, err)
	require.True(t, ok)
	var favs []string
	require.NoError(t, json.Unmarshal([]byte(raw), &favs))
	assert.Equal(t, []string{"1"}, favs)
}

func TestHydrationFromPersistedState(t *testing.T) {
	mem := storage.NewMemory()
	first := New(mem, func(bool) {})
	first.AddToCart(testArtwork("1", 100))
	first.AddToCart(testArtwork("1", 100))
	first.AddToFavorites("3")
	first.ToggleDarkMode()

	second := New(mem, func(bool) {})
	require.Len(t, second.Cart(), 1)
	assert.Equal(t, 2, second.Cart()[0].Quantity)
	assert.Equal(t, []string{"3"}, second.Favorites())
	assert.True(t, second.DarkMode())
}

func TestHydrationWithMalformedStateFallsBackToDefaults(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.SetItem(storage.KeyCart, "{not json"))
	require.NoError(t, mem.SetItem(storage.KeyFavorites, "also not json"))

	s := New(mem, func(bool) {})
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Favorites())

	// The corrupt value survives until the next successful write.
	raw, ok, _ := mem.GetItem(storage.KeyCart)
	require.True(t, ok)
	assert.Equal(t, "{not json", raw)

	s.AddToCart(testArtwork("1", 100))
	raw, _, _ = mem.GetItem(storage.KeyCart)
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &cart))
	require.Len(t, cart, 1)
}

func TestToggleDarkModeAppliesAndPersists(t *testing.T) {
	mem := storage.NewMemory()
	var applied []bool
	s := New(mem, func(dark bool) { applied = append(applied, dark) })

	// Hydration applies the initial theme.
	require.Equal(t, []bool{false}, applied)

	assert.True(t, s.ToggleDarkMode())
	assert.False(t, s.ToggleDarkMode())
	assert.Equal(t, []bool{false, true, false}, applied)

	raw, ok, _ := mem.GetItem(storage.KeyDarkMode)
	require.True(t, ok)
	assert.Equal(t, "false", raw)
}
