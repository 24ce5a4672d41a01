package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	photobooth "github.com/Arcadesys/imagengen-ig-sub001"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/ai"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/auth"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/config"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/database"
	delivery "github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/ratelimit"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/repository"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: could not load .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("connecting to database...")
	pool, err := database.NewPool(ctx, cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := database.Migrate(photobooth.Migrations, cfg.DSN()); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, verify rate limiting degraded")
	}

	blobs, err := storage.NewS3Store(ctx, storage.S3Config{
		AccountID:     cfg.StorageAccountID,
		AccessKeyID:   cfg.StorageAccessKey,
		SecretKey:     cfg.StorageSecretKey,
		Bucket:        cfg.StorageBucket,
		Region:        cfg.StorageRegion,
		Endpoint:      cfg.StorageEndpoint,
		PublicBaseURL: cfg.StoragePublicBase,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	provider, err := ai.New(ai.Config{
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Size:    cfg.AISize,
		Timeout: cfg.AITimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize AI provider")
	}

	tokens, err := auth.NewService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}

	generatorRepo := repository.NewPgGeneratorRepository(pool)
	codeRepo := repository.NewPgSessionCodeRepository(pool)
	imageRepo := repository.NewPgImageRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	userRepo := repository.NewPgUserRepository(pool)
	traitRepo := repository.NewPgTraitRepository(pool)

	accounts := service.NewAccountService(userRepo, tokens)
	generators := service.NewGeneratorService(generatorRepo)
	codes := service.NewCodeService(codeRepo)
	images := service.NewImageService(imageRepo, blobs)
	sessions := service.NewSessionService(sessionRepo, generatorRepo)
	generation := service.NewGenerationService(generatorRepo, imageRepo, sessionRepo, codes, provider, blobs)
	catalog := service.NewCatalogService(traitRepo)

	verifyLimit := ratelimit.NewRedisLimiter(redisClient, "verify", cfg.VerifyRateLimit, cfg.VerifyRateWindow)

	handler := delivery.New(accounts, generators, codes, images, sessions, generation, catalog, tokens, verifyLimit)
	router := handler.NewRouter(log.Logger, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func initLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
