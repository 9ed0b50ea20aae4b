package main

import (
	"context"
	"errors"
	"net/http"
	"newsletter/internal/api"
	"newsletter/internal/api/handler"
	"newsletter/internal/auth"
	"newsletter/internal/config"
	"newsletter/internal/flash"
	"newsletter/internal/newsletter"
	"newsletter/internal/session"
	"newsletter/internal/subscription"
	"newsletter/internal/worker"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"
	"newsletter/pkg/mailer/httpmail"
	"newsletter/pkg/mailer/sesmail"
	"newsletter/pkg/metrics"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func authParams(cfg *config.Config) auth.Params {
	return auth.Params{
		Memory:      cfg.Auth.Memory,
		Iterations:  cfg.Auth.Iterations,
		Parallelism: cfg.Auth.Parallelism,
		SaltLength:  cfg.Auth.SaltLength,
		KeyLength:   cfg.Auth.KeyLength,
	}
}

// getMailer builds the configured mail transport.
func getMailer(ctx context.Context, cfg *config.Config) mailer.Client {
	sender, err := domain.ParseSubscriberEmail(cfg.Email.SenderEmail)
	if err != nil {
		logger.Fatal(ctx, "invalid sender email", zap.Error(err))
	}

	if cfg.Email.Provider == config.EmailProviderSES {
		client, err := sesmail.New(ctx, sesmail.Options{
			Region:          cfg.Email.SES.Region,
			AccessKeyID:     cfg.Email.SES.AccessKeyID,
			SecretAccessKey: cfg.Email.SES.SecretAccessKey,
		}, sender)
		if err != nil {
			logger.Fatal(ctx, "could not create ses client", zap.Error(err))
		}

		return client
	}

	return httpmail.New(&http.Client{Timeout: cfg.Email.Timeout},
		cfg.Email.BaseURL, sender, cfg.Email.AuthorizationToken)
}

// getDummyHash returns the configured dummy password hash, or computes one.
func getDummyHash(ctx context.Context, cfg *config.Config, hasher *auth.Hasher) string {
	if cfg.Auth.DummyPasswordHash != "" {
		return cfg.Auth.DummyPasswordHash
	}

	hash, err := hasher.NewDummyHash()
	if err != nil {
		logger.Fatal(ctx, "could not compute dummy password hash", zap.Error(err))
	}

	return hash
}

func setupServer(ctx context.Context, cfg *config.Config, deps handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps:       deps,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			workers := cfg.Auth.VerifyWorkers
			if workers < 1 {
				workers = runtime.GOMAXPROCS(0)
			}
			pool := worker.NewPool(workers)
			defer pool.Stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() { _ = mp.Shutdown(context.Background()) }()
			// no-op unless a provider was installed with otel.SetTracerProvider
			tp := otel.GetTracerProvider()

			hasher := auth.NewHasher(authParams(cfg))
			authenticator, err := auth.NewAuthenticator(strg, pool, hasher, getDummyHash(ctx, cfg, hasher), mp, tp)
			if err != nil {
				logger.Fatal(ctx, "could not create authenticator", zap.Error(err))
			}

			flasher, err := flash.New([]byte(cfg.HMACSecret), cfg.Session.Secure)
			if err != nil {
				logger.Fatal(ctx, "could not create flash messages", zap.Error(err))
			}

			mail := getMailer(ctx, cfg)
			dispatcher, err := newsletter.NewDispatcher(strg, mail, cfg.Newsletter.Concurrency, mp, tp)
			if err != nil {
				logger.Fatal(ctx, "could not create newsletter dispatcher", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, handler.Deps{
				Auth:          authenticator,
				Sessions:      session.NewStore(redisClient, cfg.Session.TTL),
				Subscriptions: subscription.NewService(strg, mail, cfg.BaseURL, tp),
				Publisher:     dispatcher,
				Users:         strg,
				Flash:         flasher,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
