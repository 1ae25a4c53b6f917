package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/vibeguard/vibeguard/internal/handlers"
	"github.com/vibeguard/vibeguard/internal/jwt"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/mailer"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/pdf"
	"github.com/vibeguard/vibeguard/internal/repositories"
	"github.com/vibeguard/vibeguard/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title VibeGuard API
// @version 1.0.0
// @description Health information service: symptom checker, reports, tracking and community
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExp, cookieSecure, codeTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExp, cookieSecure, codeTTL,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, SMTP, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom string,
	jwtSecretKey string, jwtExpSecond int, cookieSecure bool, codeTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "vibeguard")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "account-events")

	// SMTP config
	smtpHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	smtpPort = getEnv("SMTP_PORT", "465")
	smtpUser = getEnv("SMTP_USERNAME", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	smtpFrom = getEnv("SMTP_FROM", smtpUser)

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	cookieSecure = getEnv("JWT_COOKIE_SECURE", "false") == "true"
	if codeTTLSecond, err = strconv.Atoi(getEnv("VERIFICATION_CODE_TTL_SECOND", "600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom string,
	jwtSecretKey string, jwtExpSecond int, cookieSecure bool, codeTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for account lifecycle events
	eventPublisher := services.NewAccountEventPublisher(nil)
	if kafkaAddr != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		eventPublisher = services.NewAccountEventPublisher(kafkaWriter)
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second, cookieSecure)

	// Initialize mailer
	mail := mailer.New(smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(rdb, time.Duration(codeTTLSecond)*time.Second)
	catalogRepo := repositories.NewCatalogReadRepository(db)
	selectionWriteRepo := repositories.NewSelectionWriteRepository(db)
	selectionReadRepo := repositories.NewSelectionReadRepository(db)
	basicInfoRepo := repositories.NewBasicInfoRepository(db)
	healthDataRepo := repositories.NewHealthDataRepository(db)
	postRepo := repositories.NewPostRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, codeRepo, mail, tokens, eventPublisher, selectionWriteRepo, basicInfoRepo)
	checkerService := services.NewCheckerService(catalogRepo, selectionWriteRepo)
	reportService := services.NewReportService(selectionReadRepo, basicInfoRepo, catalogRepo, userReadRepo, pdf.New())
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, basicInfoRepo, healthDataRepo)
	communityService := services.NewCommunityService(postRepo, feedbackRepo, userReadRepo)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, mail, eventPublisher)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/login/create", handlers.NewRegisterHandler(authService))
		r.Post("/login/login", handlers.NewLoginHandler(authService, tokens))
		r.Post("/login/verify-email", handlers.NewVerifyEmailHandler(authService))
		r.Post("/login/forgotpassword", handlers.NewForgotPasswordHandler(authService))
		r.Post("/login/reset-password/verify", handlers.NewConfirmResetHandler(authService))
	})
	r.Get("/login/logout", handlers.NewLogoutHandler(tokens))

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequiredUser(tokens))
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/login/resetpassword", handlers.NewResetPasswordHandler(authService))

		r.Get("/login/profile", handlers.NewGetProfileHandler(profileService))
		r.Post("/login/profile/update", handlers.NewUpdateProfileHandler(profileService))
		r.Post("/login/profile/delete", handlers.NewDeleteAccountHandler(authService, tokens))

		r.Get("/check/read", handlers.NewListBodyPartsHandler(checkerService))
		r.Get("/check/read/{bodyPartId}", handlers.NewListSymptomsHandler(checkerService))
		r.Get("/check/doctor/read/{bodyPartId}", handlers.NewListDoctorsHandler(checkerService))
		r.Get("/check/symptom/{symptomId}/details", handlers.NewGetSymptomDetailHandler(checkerService))
		r.Get("/check/medicine/read/{symptomId}", handlers.NewListMedicinesHandler(checkerService))
		r.Post("/check/symptom/select", handlers.NewSelectSymptomHandler(checkerService))

		r.Get("/report/symptom/report", handlers.NewGetReportHandler(reportService))
		r.Get("/report/download/pdf", handlers.NewDownloadReportHandler(reportService))

		r.Get("/tracking/basic-info", handlers.NewGetBasicInfoHandler(profileService))
		r.Post("/tracking/basic-info", handlers.NewSaveBasicInfoHandler(profileService))
		r.Get("/tracking/health-data", handlers.NewListHealthDataHandler(profileService))
		r.Post("/tracking/health-data", handlers.NewAddHealthDataHandler(profileService))

		r.Get("/posts", handlers.NewListPostsHandler(communityService))
		r.Post("/posts", handlers.NewCreatePostHandler(communityService))
		r.Post("/posts/{id}/like", handlers.NewToggleLikeHandler(communityService))
		r.Post("/posts/{id}/comments", handlers.NewAddCommentHandler(communityService))
		r.Post("/posts/{id}/rate", handlers.NewRatePostHandler(communityService))

		r.Post("/feedback", handlers.NewCreateFeedbackHandler(communityService))
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequiredAdmin(tokens))
		r.Use(middlewares.TxMiddleware(db))

		r.Get("/admin/stats", handlers.NewSummaryStatsHandler(reportService))
		r.Get("/admin/users", handlers.NewListUsersHandler(adminService))
		r.Post("/admin/users/{id}/suspend", handlers.NewSuspendUserHandler(adminService))
		r.Get("/admin/feedback", handlers.NewListFeedbackHandler(communityService))
		r.Get("/admin/report/download", handlers.NewDownloadSummaryReportHandler(reportService))
		r.Delete("/admin/posts/{id}", handlers.NewDeletePostHandler(communityService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
