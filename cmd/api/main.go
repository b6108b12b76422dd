package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/priscillalife/site-api/internal/content"
	"github.com/priscillalife/site-api/internal/http/handlers"
	"github.com/priscillalife/site-api/internal/mailer"
	"github.com/priscillalife/site-api/internal/ratelimit"
	"github.com/priscillalife/site-api/pkg/config"
	"github.com/priscillalife/site-api/pkg/logger"
	mw "github.com/priscillalife/site-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	store, cleanup, err := newRateLimitStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize rate limit store", "backend", cfg.RateLimit.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	limiter := ratelimit.New(store, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	mail := newMailer(cfg)
	contentClient := content.New(cfg.Content)
	if contentClient == nil {
		logger.Warn("Content store not configured; /api/content endpoints disabled")
	}

	h := handlers.New(cfg, limiter, mail, contentClient)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("site-api"))
	r.Use(mw.Logging)
	r.Use(mw.Recover(cfg.Production()))
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://priscilla.life", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/booking", h.CreateBooking)

		r.Route("/content", func(r chi.Router) {
			r.Get("/music", h.ListMusic)
			r.Get("/food", h.ListFood)
			r.Get("/host", h.ListHostEvents)
			r.Get("/host/showreel", h.GetShowreel)
			r.Get("/social", h.ListSocialProfiles)
			r.Get("/settings", h.GetSiteSettings)
			r.Get("/brands", h.ListBrands)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down site API...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting site API", "port", cfg.Server.Port, "env", cfg.Env)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// newRateLimitStore picks the counter backend. Memory is the default and is
// correct for a single instance only; redis and postgres share the budget
// across instances.
func newRateLimitStore(ctx context.Context, cfg *config.Config) (ratelimit.Store, func(), error) {
	switch cfg.RateLimit.Backend {
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}

		return ratelimit.NewRedisStore(client), func() { client.Close() }, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		return ratelimit.NewPostgresStore(pool), pool.Close, nil

	default:
		return ratelimit.NewMemoryStore(), func() {}, nil
	}
}

func newMailer(cfg *config.Config) mailer.Mailer {
	switch cfg.Email.Provider {
	case "smtp":
		return mailer.NewSMTP(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.FromEmail,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPass,
			cfg.Email.SMTPUseTLS,
		)
	case "dev":
		return mailer.NewDev()
	default:
		return mailer.NewMailerSend(
			cfg.Email.MailerSendKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			cfg.Email.SendTimeout,
		)
	}
}
