package auth

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SolomonAgyire/Gallery/models"
	"github.com/SolomonAgyire/Gallery/storage"
)

const (
	// ProviderEmail tags accounts created through the email/password flow.
	ProviderEmail = "email"

	// ResetPasswordValue replaces a user's password on reset. A fixed value
	// instead of a one-time token, because this store only simulates a
	// provider.
	ResetPasswordValue = "Password123"

	demoEmail    = "demo@example.com"
	demoPassword = "Password123"

	defaultDelay               = time.Second
	defaultVerificationSentTTL = 5 * time.Minute
)

// Store simulates an authentication provider on top of the key-value storage
// layer. It owns the currentUser and mockUserDb keys. Every operation pauses
// for an artificial delay before resolving, to emulate network I/O.
type Store struct {
	mu    sync.Mutex
	st    storage.Storage
	delay time.Duration
	now   func() time.Time

	verificationSentTTL   time.Duration
	verificationEmailSent bool
	verificationTimer     *time.Timer

	current *models.User
}

type Option func(*Store)

// WithDelay overrides the simulated network latency. Zero makes every
// operation resolve synchronously, which is what tests want.
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithClock pins the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithVerificationSentTTL overrides how long the transient "verification
// email sent" flag stays up.
func WithVerificationSentTTL(d time.Duration) Option {
	return func(s *Store) { s.verificationSentTTL = d }
}

// NewStore seeds the mock user database (including the demo account) and
// rehydrates the previous session, if one was persisted.
func NewStore(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		st:                  st,
		delay:               defaultDelay,
		now:                 time.Now,
		verificationSentTTL: defaultVerificationSentTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seedDemoUser()
	s.rehydrateSession()
	return s
}

func (s *Store) seedDemoUser() {
	users := s.loadUsers()
	for _, u := range users {
		if u.Email == demoEmail {
			return
		}
	}
	now := s.now()
	users = append(users, models.StoredUser{
		User: models.User{
			ID:              "demo_user",
			Email:           demoEmail,
			FirstName:       "Demo",
			LastName:        "User",
			IsEmailVerified: true,
			Provider:        ProviderEmail,
			CreatedAt:       now,
			LastLoginAt:     now,
		},
		Password: demoPassword,
	})
	s.saveUsers(users)
	log.Info().Msgf("Demo account created: %s / %s", demoEmail, demoPassword)
}

func (s *Store) rehydrateSession() {
	raw, ok, _ := s.st.GetItem(storage.KeyCurrentUser)
	if !ok {
		return
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Warn().Err(err).Msg("failed to parse stored session, discarding")
		_ = s.st.RemoveItem(storage.KeyCurrentUser)
		return
	}
	s.current = &u
}

// pause sleeps for the configured artificial delay. It runs outside the
// store lock so a pending call does not serialize other operations.
func (s *Store) pause() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// Login authenticates against the mock database. On success it bumps the
// last-login timestamp, strips the password and stores the result as the
// current session. Unverified email/password accounts get a verification
// email triggered automatically.
func (s *Store) Login(email, password string) (*models.User, error) {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	i := indexByEmail(users, email)
	if i < 0 {
		return nil, ErrUserNotFound
	}
	if users[i].Password != password {
		return nil, ErrInvalidCredentials
	}

	users[i].LastLoginAt = s.now()
	s.saveUsers(users)

	u := users[i].User
	s.setSession(&u)

	if !u.IsEmailVerified && u.Provider == ProviderEmail {
		s.markVerificationSent(u.Email)
	}
	return s.copyCurrent(), nil
}

// Signup registers a new unverified email/password account and signs it in.
func (s *Store) Signup(email, password, firstName, lastName string) (*models.User, error) {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	if indexByEmail(users, email) >= 0 {
		return nil, ErrEmailTaken
	}

	now := s.now()
	newUser := models.StoredUser{
		User: models.User{
			ID:          "user_" + uuid.NewString(),
			Email:       email,
			FirstName:   firstName,
			LastName:    lastName,
			Provider:    ProviderEmail,
			CreatedAt:   now,
			LastLoginAt: now,
		},
		Password: password,
	}
	users = append(users, newUser)
	s.saveUsers(users)

	u := newUser.User
	s.setSession(&u)
	s.markVerificationSent(u.Email)
	return s.copyCurrent(), nil
}

// Logout clears the current session. It always succeeds.
func (s *Store) Logout() {
	if s.delay > 0 {
		time.Sleep(s.delay / 2)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	_ = s.st.RemoveItem(storage.KeyCurrentUser)
}

// ResetPassword overwrites the stored password with the fixed reset value.
// Only email/password accounts can be reset.
func (s *Store) ResetPassword(email string) error {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	i := indexByEmail(users, email)
	if i < 0 {
		return ErrUserNotFound
	}

	log.Info().Str("email", email).Msg("password reset email would be sent")

	if users[i].Provider != ProviderEmail {
		return ErrProviderMismatch
	}
	users[i].Password = ResetPasswordValue
	s.saveUsers(users)
	return nil
}

// UpdateProfile applies the patch to both the stored record and the current
// session. Changing the email resets the verified flag. It also bumps the
// last-login timestamp, matching the behavior this store simulates.
func (s *Store) UpdateProfile(patch models.ProfilePatch) (*models.User, error) {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}

	users := s.loadUsers()
	i := indexByID(users, s.current.ID)
	if i < 0 {
		return s.copyCurrent(), nil
	}

	emailChanged := patch.Email != nil && *patch.Email != users[i].Email
	if patch.Email != nil {
		users[i].Email = *patch.Email
	}
	if patch.FirstName != nil {
		users[i].FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		users[i].LastName = *patch.LastName
	}
	if patch.PhotoURL != nil {
		users[i].PhotoURL = *patch.PhotoURL
	}
	if emailChanged {
		users[i].IsEmailVerified = false
	}
	users[i].LastLoginAt = s.now()
	s.saveUsers(users)

	u := users[i].User
	s.setSession(&u)
	return s.copyCurrent(), nil
}

// SendVerificationEmail simulates the side effect: it logs, raises the
// transient "email sent" flag and schedules the flag to clear itself.
func (s *Store) SendVerificationEmail() error {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}
	s.markVerificationSent(s.current.Email)
	return nil
}

// VerifyEmail flips the verified flag in both the record collection and the
// current session.
func (s *Store) VerifyEmail() error {
	s.pause()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}

	users := s.loadUsers()
	if i := indexByID(users, s.current.ID); i >= 0 {
		users[i].IsEmailVerified = true
		s.saveUsers(users)
	}
	u := *s.current
	u.IsEmailVerified = true
	s.setSession(&u)
	return nil
}

// CurrentUser returns a copy of the session user, if any.
func (s *Store) CurrentUser() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	return s.copyCurrent(), true
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// IsVerificationEmailSent reports the transient "email sent" flag.
func (s *Store) IsVerificationEmailSent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verificationEmailSent
}

// markVerificationSent must be called with the lock held.
func (s *Store) markVerificationSent(email string) {
	log.Info().Str("email", email).Msg("verification email sent")
	s.verificationEmailSent = true
	if s.verificationTimer != nil {
		s.verificationTimer.Stop()
	}
	s.verificationTimer = time.AfterFunc(s.verificationSentTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.verificationEmailSent = false
	})
}

// setSession must be called with the lock held.
func (s *Store) setSession(u *models.User) {
	s.current = u
	data, _ := json.Marshal(u)
	if err := s.st.SetItem(storage.KeyCurrentUser, string(data)); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
	}
}

func (s *Store) copyCurrent() *models.User {
	u := *s.current
	return &u
}

func (s *Store) loadUsers() []models.StoredUser {
	raw, ok, _ := s.st.GetItem(storage.KeyMockUserDB)
	if !ok {
		return nil
	}
	var users []models.StoredUser
	_ = json.Unmarshal([]byte(raw), &users)
	return users
}

func (s *Store) saveUsers(users []models.StoredUser) {
	data, _ := json.Marshal(users)
	if err := s.st.SetItem(storage.KeyMockUserDB, string(data)); err != nil {
		log.Error().Err(err).Msg("failed to persist mock user db")
	}
}

func indexByEmail(users []models.StoredUser, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}

func indexByID(users []models.StoredUser, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
