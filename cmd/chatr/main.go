package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/chatrapp/chatr/pkg/auth"
	authapi "github.com/chatrapp/chatr/pkg/auth/api"
	"github.com/chatrapp/chatr/pkg/config"
	"github.com/chatrapp/chatr/pkg/contacts"
	contactsapi "github.com/chatrapp/chatr/pkg/contacts/api"
	"github.com/chatrapp/chatr/pkg/credentials"
	"github.com/chatrapp/chatr/pkg/location"
	locationapi "github.com/chatrapp/chatr/pkg/location/api"
	"github.com/chatrapp/chatr/pkg/notification"
	"github.com/chatrapp/chatr/pkg/otp"
	otpapi "github.com/chatrapp/chatr/pkg/otp/api"
	"github.com/chatrapp/chatr/pkg/token"
	"github.com/chatrapp/chatr/pkg/validation"
	"github.com/chatrapp/chatr/pkg/verification"
	verificationapi "github.com/chatrapp/chatr/pkg/verification/api"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.ToDatabaseURL())
	if err != nil {
		slog.Error("Failed creating dbpool", "db", cfg.Database.Database, "host", cfg.Database.Host, "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	notifier, err := notification.NewEmailNotifier(cfg.Email.ToSMTPConfig())
	if err != nil {
		slog.Error("Failed to create email notifier", "err", err)
		os.Exit(1)
	}
	notices := notification.NewManager(notifier)
	if err := notification.RegisterDefaultNotices(notices); err != nil {
		slog.Error("Failed to register notices", "err", err)
		os.Exit(1)
	}

	expiry, err := cfg.JWT.ParseTokenExpiry()
	if err != nil {
		slog.Error("Invalid token expiry", "value", cfg.JWT.TokenExpiry, "err", err)
		os.Exit(1)
	}
	tokens := token.NewService(cfg.JWT.Secret,
		token.WithExpiry(expiry),
		token.WithIssuer(cfg.JWT.Issuer),
	)

	validate := validation.New()

	authService := auth.NewService(
		auth.NewPostgresRepository(pool),
		credentials.NewDefaultPasswordPolicyChecker(nil),
		tokens,
		notices,
	)
	verificationService := verification.NewService(verification.NewPostgresRepository(pool), notices)
	otpService := otp.NewService(otp.NewPostgresRepository(pool), notices)
	contactsService := contacts.NewService(contacts.NewPostgresRepository(pool))
	locationService := location.NewService(location.NewPostgresRepository(pool))

	authHandle := authapi.NewHandle(authService, validate)
	verificationHandle := verificationapi.NewHandle(verificationService)
	otpHandle := otpapi.NewHandle(otpService, validate)
	contactsHandle := contactsapi.NewHandle(contactsService)
	locationHandle := locationapi.NewHandle(locationService, validate)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Mount("/auth", authHandle.Routes())
	r.Post("/changePassword", authHandle.ChangePassword)
	r.Route("/verify", func(r chi.Router) {
		// Static OTP paths before the email parameter.
		otpHandle.RegisterRoutes(r)
		verificationHandle.RegisterRoutes(r)
	})

	ja := tokens.JWTAuth()
	r.Group(func(r chi.Router) {
		r.Use(token.Verifier(ja))
		r.Use(token.Authenticator)
		r.Mount("/contacts", contactsHandle.Routes())
		r.Mount("/location", locationHandle.Routes())
	})

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "err", err)
	}
}
