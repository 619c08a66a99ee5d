package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis/v3"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"moodtunes/config"
	"moodtunes/handlers"
	"moodtunes/middleware"
	"moodtunes/pkg/logger"
	"moodtunes/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	pool, err := store.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer pool.Close()

	if err := store.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	accounts := store.NewAccountStore(pool)
	catalog := store.NewCatalogStore(pool)
	if err := catalog.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	// Sessions live server-side, keyed by an opaque cookie token. With a
	// Redis URL configured they survive restarts; otherwise they stay in
	// process memory.
	sessionCfg := session.Config{
		Expiration:     cfg.SessionTTL,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
	}
	if cfg.RedisURL != "" {
		sessionCfg.Storage = redis.New(redis.Config{URL: cfg.RedisURL})
	}
	sessions := session.New(sessionCfg)

	app := fiber.New(fiber.Config{
		Views:        html.New(cfg.ViewsDir, ".html"),
		ErrorHandler: handlers.ErrorHandler(log),
	})
	app.Use(middleware.RequestLogger(log))

	h := handlers.New(accounts, catalog, sessions, log)
	guard := middleware.NewGuard(sessions, log)

	app.Get("/", h.Index)
	app.Get("/signup", h.Signup)
	app.Get("/signin", h.Signin)
	app.Get("/forgot-password", h.ForgotPassword)
	app.Get("/healthz", h.Health)

	app.Get("/dashboard", guard.Page, h.Dashboard)
	app.Get("/quiz", guard.Page, h.Quiz)
	app.Get("/images", guard.Page, h.Images)
	app.Get("/puzzle", guard.Page, h.Puzzle)

	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/logout", h.Logout)
	app.Post("/reset_password", h.ResetPassword)
	app.Post("/get_recommendations", guard.API, h.GetRecommendations)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
