package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/partyspace/partyspace-api/internal/auth"
	"github.com/partyspace/partyspace-api/internal/config"
	"github.com/partyspace/partyspace-api/internal/database"
	"github.com/partyspace/partyspace-api/internal/handlers"
	"github.com/partyspace/partyspace-api/internal/identity"
	"github.com/partyspace/partyspace-api/internal/listings"
	"github.com/partyspace/partyspace-api/internal/loading"
	guardmw "github.com/partyspace/partyspace-api/internal/middleware"
	"github.com/partyspace/partyspace-api/internal/profile"
	"github.com/partyspace/partyspace-api/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var provider identity.Provider
	if cfg.IdentityAPIKey != "" {
		provider = identity.NewRESTProvider(cfg.IdentityBaseURL, cfg.IdentityAPIKey)
	} else {
		if cfg.TokenSecret == "" {
			log.Fatalf("TOKEN_SECRET is required when IDENTITY_API_KEY is not set")
		}
		provider = identity.NewLocalProvider(identity.NewTokenService(cfg.TokenSecret, cfg.TokenExpiry))
	}
	log.Printf("Using %s identity provider", provider.Name())

	profileStore := profile.NewStore(db)
	authClient := auth.NewClient(provider, profileStore)
	reconciler := profile.NewReconciler(profileStore)

	sessions := session.NewManager(authClient, reconciler)
	sessions.Start()
	defer sessions.Close()

	listingService := listings.NewService(db)
	indicator := loading.NewIndicator(loading.DefaultThreshold)

	rateLimiter := guardmw.NewRateLimiter(guardmw.DefaultRateLimiterConfig())
	defer rateLimiter.Stop()

	authHandler := handlers.NewAuthHandler(sessions)
	userHandler := handlers.NewUserHandler(sessions)
	venueHandler := handlers.NewVenueHandler()
	listingHandler := handlers.NewListingHandler(listingService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(guardmw.NavigationIntent(indicator))

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(rateLimiter.Middleware(guardmw.ClientIP))
	authGroup.Post("/sign-up", authHandler.SignUp)
	authGroup.Post("/sign-in", authHandler.SignIn)
	authGroup.Post("/sign-out", authHandler.SignOut)

	api.Get("/session", authHandler.Session)

	api.Get("/venues", venueHandler.List)
	api.Get("/venues/:id", venueHandler.Get)
	api.Get("/venues/:id/reviews", venueHandler.Reviews)

	protected := api.Group("")
	protected.Use(guardmw.Guard(sessions, false))
	protected.Get("/users/me", userHandler.GetMe)
	protected.Post("/listings", listingHandler.Create)
	protected.Get("/listings/mine", listingHandler.Mine)

	admin := api.Group("")
	admin.Use(guardmw.Guard(sessions, true))
	admin.Get("/listings", listingHandler.List)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})
	api.Get("/status", func(c *drift.Context) {
		_ = c.JSON(200, map[string]any{
			"session": sessions.Snapshot().State.String(),
			"loading": indicator.Visible(),
		})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
