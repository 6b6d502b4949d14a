package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sanjaygurung/wildfolio/internal"
	"github.com/sanjaygurung/wildfolio/internal/auth"
	authrepo "github.com/sanjaygurung/wildfolio/internal/auth/postgres"
	"github.com/sanjaygurung/wildfolio/internal/blog"
	blogrepo "github.com/sanjaygurung/wildfolio/internal/blog/postgres"
	"github.com/sanjaygurung/wildfolio/internal/contact"
	contactrepo "github.com/sanjaygurung/wildfolio/internal/contact/postgres"
	"github.com/sanjaygurung/wildfolio/internal/donation"
	donationrepo "github.com/sanjaygurung/wildfolio/internal/donation/postgres"
	"github.com/sanjaygurung/wildfolio/internal/gallery"
	galleryrepo "github.com/sanjaygurung/wildfolio/internal/gallery/postgres"
	"github.com/sanjaygurung/wildfolio/internal/joinrequest"
	joinrepo "github.com/sanjaygurung/wildfolio/internal/joinrequest/postgres"
	"github.com/sanjaygurung/wildfolio/internal/paymentmethod"
	pmrepo "github.com/sanjaygurung/wildfolio/internal/paymentmethod/postgres"
	"github.com/sanjaygurung/wildfolio/internal/settings"
	settingsrepo "github.com/sanjaygurung/wildfolio/internal/settings/postgres"
	"github.com/sanjaygurung/wildfolio/internal/transport/rest"
	"github.com/sanjaygurung/wildfolio/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.JWTAccessSecret,
		cfg.Security.JWTRefreshSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authrepo.NewRepository(deps.GormDB), tokenGen, cfg.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	paymentMethodRepo := pmrepo.NewPaymentMethodRepository(deps.GormDB)
	paymentMethodService := paymentmethod.NewService(paymentMethodRepo, deps.Logger)
	paymentMethodHandler := paymentmethod.NewHandler(paymentMethodService)

	donationService := donation.NewService(
		donationrepo.NewDonationRepository(deps.GormDB),
		paymentMethodService,
		deps.Logger,
	)
	donationHandler := donation.NewHandler(donationService)

	blogService := blog.NewService(blogrepo.NewBlogRepository(deps.GormDB), deps.Logger)
	blogHandler := blog.NewHandler(blogService)

	galleryService := gallery.NewService(galleryrepo.NewGalleryRepository(deps.GormDB), deps.Logger)
	galleryHandler := gallery.NewHandler(galleryService)

	contactService := contact.NewService(contactrepo.NewContactRepository(deps.GormDB), deps.Logger)
	contactHandler := contact.NewHandler(contactService)

	joinService := joinrequest.NewService(joinrepo.NewJoinRequestRepository(deps.GormDB), deps.Logger)
	joinHandler := joinrequest.NewHandler(joinService)

	settingsService := settings.NewService(settingsrepo.NewSettingsRepository(deps.GormDB), deps.Logger)
	settingsHandler := settings.NewHandler(settingsService)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, rest.Handlers{
		Auth:          authHandler,
		Donation:      donationHandler,
		PaymentMethod: paymentMethodHandler,
		Blog:          blogHandler,
		Gallery:       galleryHandler,
		Contact:       contactHandler,
		JoinRequest:   joinHandler,
		Settings:      settingsHandler,
	}, cfg.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pgx stdlib connection shared by the ORM and the health
// check, and verifies it with a ping.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
