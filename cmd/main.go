package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/handlers"
	"github.com/fabula-app/fabula/internal/jwt"
	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/middlewares"
	"github.com/fabula-app/fabula/internal/repositories"
	"github.com/fabula-app/fabula/internal/services"

	_ "github.com/fabula-app/fabula/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	statsCacheTTL     time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExp       time.Duration

	grokAPIKey      string
	grokAPIURL      string
	grokModel       string
	grokMaxTokens   int
	grokTemperature float64

	rateLimitMax    int
	rateLimitWindow time.Duration

	corsOrigins []string
	staticDir   string
}

// @title Fabula API
// @version 1.0.0
// @description Backend for the Fabula writing app: books, chapters, and AI-assisted authoring
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.staticDir = getEnv("STATIC_DIR", "")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "fabula")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	statsTTL, err := strconv.Atoi(getEnv("STATS_CACHE_TTL_SECOND", "300"))
	if err != nil {
		return
	}
	cfg.statsCacheTTL = time.Duration(statsTTL) * time.Second

	// Kafka config; empty KAFKA_BROKERS disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "fabula-content-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800"))
	if err != nil {
		return
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	// Grok config
	cfg.grokAPIKey = getEnv("GROK_API_KEY", "")
	cfg.grokAPIURL = getEnv("GROK_API_URL", "")
	cfg.grokModel = getEnv("GROK_MODEL", "")
	if cfg.grokMaxTokens, err = strconv.Atoi(getEnv("GROK_MAX_TOKENS", "1000")); err != nil {
		return
	}
	if cfg.grokTemperature, err = strconv.ParseFloat(getEnv("GROK_TEMPERATURE", "0.7"), 64); err != nil {
		return
	}

	// Rate limit config
	if cfg.rateLimitMax, err = strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100")); err != nil {
		return
	}
	rateWindow, err := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "900"))
	if err != nil {
		return
	}
	cfg.rateLimitWindow = time.Duration(rateWindow) * time.Second

	cfg.corsOrigins = strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ",")

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and AI client, wires
// repositories, services, and handlers, and serves HTTP until a shutdown
// signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for content events, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, content events disabled")
	}

	// AI client
	grokClient := grok.NewClient(grok.Config{
		APIKey:      cfg.grokAPIKey,
		APIURL:      cfg.grokAPIURL,
		Model:       cfg.grokModel,
		MaxTokens:   cfg.grokMaxTokens,
		Temperature: cfg.grokTemperature,
	})
	if !grokClient.Available() {
		logger.Log.Warn("GROK_API_KEY not set, AI endpoints will answer 503")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.jwtSecretKey, cfg.jwtExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db)
	chapterReadRepo := repositories.NewChapterReadRepository(db)
	chapterWriteRepo := repositories.NewChapterWriteRepository(db, middlewares.GetTxFromContext)
	statsCacheRepo := repositories.NewBookStatsCacheRepository(rdb, cfg.statsCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, chapterReadRepo, grokClient, statsCacheRepo, kafkaWriter)
	chapterService := services.NewChapterService(bookReadRepo, chapterReadRepo, chapterWriteRepo, grokClient, statsCacheRepo, kafkaWriter)
	batchService := services.NewBatchService(grokClient)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.NewHealthHandler(db, rdb, grokClient))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.DefaultRateLimiter(cfg.rateLimitMax, cfg.rateLimitWindow))

		// Public auth routes, strictly rate limited
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthRateLimiter())
			r.Post("/auth/register", handlers.NewRegisterHandler(authService))
			r.Post("/auth/login", handlers.NewLoginHandler(authService))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/auth/profile", handlers.NewProfileHandler(authService))
			r.Put("/auth/profile", handlers.NewUpdateProfileHandler(authService))
			r.Put("/auth/password", handlers.NewChangePasswordHandler(authService))
			r.Post("/auth/refresh", handlers.NewRefreshTokenHandler(authService))

			r.Get("/books", handlers.NewListBooksHandler(bookService))
			r.Post("/books", handlers.NewCreateBookHandler(bookService))
			r.Get("/books/{bookId}", handlers.NewGetBookHandler(bookService))
			r.Put("/books/{bookId}", handlers.NewUpdateBookHandler(bookService))
			r.Delete("/books/{bookId}", handlers.NewDeleteBookHandler(bookService))
			r.Get("/books/{bookId}/stats", handlers.NewBookStatsHandler(bookService))

			r.Get("/books/{bookId}/chapters", handlers.NewListChaptersHandler(chapterService))
			r.Get("/books/{bookId}/chapters/{chapterId}", handlers.NewGetChapterHandler(chapterService))

			// Chapter mutations run inside a request transaction so the
			// chapter write and the book aggregate refresh commit together.
			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/books/{bookId}/chapters", handlers.NewCreateChapterHandler(chapterService))
				r.Put("/books/{bookId}/chapters/{chapterId}", handlers.NewUpdateChapterHandler(chapterService))
				r.Delete("/books/{bookId}/chapters/{chapterId}", handlers.NewDeleteChapterHandler(chapterService))
				r.Post("/books/{bookId}/chapters/{chapterId}/suggestions/apply", handlers.NewApplySuggestionHandler(chapterService))
			})

			// AI routes, per-user rate limited
			r.Group(func(r chi.Router) {
				r.Use(middlewares.AIRateLimiter())

				r.Post("/books/{bookId}/summary", handlers.NewBookSummaryHandler(bookService))
				r.Post("/books/{bookId}/chapters/{chapterId}/summarize", handlers.NewSummarizeChapterHandler(chapterService))

				r.Group(func(r chi.Router) {
					r.Use(txMiddleware)
					r.Post("/books/{bookId}/chapters/{chapterId}/enhance", handlers.NewEnhanceChapterHandler(chapterService))
					r.Post("/books/{bookId}/chapters/{chapterId}/integrate", handlers.NewIntegrateThoughtHandler(chapterService))
				})

				r.Get("/grok/status", handlers.NewGrokStatusHandler(grokClient))
				r.Post("/grok/test", handlers.NewGrokTestHandler(grokClient))
				r.Post("/grok/chat", handlers.NewGrokChatHandler(grokClient))
				r.Post("/grok/generate", handlers.NewGenerateContentHandler(grokClient))
				r.Post("/grok/analyze", handlers.NewAnalyzeWritingHandler(grokClient))
				r.Post("/grok/batch", handlers.NewGrokBatchHandler(batchService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	// Static SPA fallback
	if cfg.staticDir != "" {
		r.Get("/*", spaHandler(cfg.staticDir))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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

// spaHandler serves files from dir, falling back to index.html for paths
// without an extension so client-side routing works.
func spaHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
