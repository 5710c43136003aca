package main

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v78"

	"github.com/SolomonAgyire/Gallery/auth"
	"github.com/SolomonAgyire/Gallery/config"
	checkoutControllers "github.com/SolomonAgyire/Gallery/controllers/checkout"
	"github.com/SolomonAgyire/Gallery/routes"
	"github.com/SolomonAgyire/Gallery/storage"
	"github.com/SolomonAgyire/Gallery/store"
)

func main() {
	log.Info().Msg("✅ Starting application...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Configuration error")
	}

	stripe.Key = cfg.StripeSecretKey
	log.Info().Bool("stripe_key_available", cfg.StripeSecretKey != "").Msg("Stripe configured")

	// Open the key-value storage file (the localStorage stand-in).
	st, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to open storage")
	}

	appStore := store.New(st, nil)
	authStore := auth.NewStore(st)

	r := gin.Default()

	// Allow any localhost origin, mirroring the storefront dev setup.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "" || strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		App:       appStore,
		Auth:      authStore,
		Sessions:  checkoutControllers.StripeSessions(),
		JWTSecret: cfg.JWTSecret,
		StripeKey: cfg.StripeSecretKey,
	})

	log.Info().Msgf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
