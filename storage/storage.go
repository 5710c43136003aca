package storage

// Storage keys. Exactly one logical owner writes each key: the app store owns
// darkMode/cart/favorites, the auth store owns currentUser/mockUserDb.
const (
	KeyDarkMode    = "darkMode"
	KeyCart        = "cart"
	KeyFavorites   = "favorites"
	KeyCurrentUser = "currentUser"
	KeyMockUserDB  = "mockUserDb"
)

// Storage is a localStorage-style key-value store. Values are JSON strings.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
