package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything read from the environment. The payment-processor
// and external-database keys are presence-checked only; a missing one aborts
// startup.
type Config struct {
	Port string `env:"PORT,default=3000"`

	StripeSecretKey      string `env:"STRIPE_SECRET_KEY,required"`
	StripePublishableKey string `env:"STRIPE_PUBLISHABLE_KEY,required"`

	SupabaseURL     string `env:"SUPABASE_URL,required"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY,required"`

	JWTSecret   string `env:"JWT_SECRET,default=dev-secret-change-me"`
	StoragePath string `env:"GALLERY_STORAGE_PATH,default=gallery.db"`
}

// Load reads .env if present and decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	return &cfg, nil
}
