package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shelf/internal/bot"
	"shelf/internal/config"
	"shelf/internal/storage"
	"shelf/internal/storage/ch"
	"shelf/internal/storage/fixtures"
	"shelf/internal/views"
	"shelf/internal/web"
)

const shutdownTimeout = 5 * time.Second

// App represents the application
type App struct {
	config *config.Config
	logger *zap.Logger
	db     storage.Storage
	views  *views.Builder
	bot    *bot.Bot
	server *http.Server
}

// New creates and initializes a new application instance
func New() (*App, error) {
	// Load .env file if it exists
	envErr := godotenv.Load()

	// Load configuration from environment variables
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	app := &App{config: cfg, logger: logger}

	logger.Info("Starting Shelf Indulgence dashboard...")

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	app.views = views.NewBuilder(app.db, fixtures.Showcase())

	if cfg.BotEnabled() {
		if err := app.initBot(); err != nil {
			return nil, err
		}
	}

	if err := app.initHTTPServer(); err != nil {
		return nil, err
	}

	return app, nil
}

// newLogger builds a JSON logger, or a development logger for "console"
func newLogger(level, format string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	cfg.Level = lvl
	return cfg.Build()
}

// initDatabase picks the catalog backend and loads it
func (a *App) initDatabase() error {
	var db storage.Storage
	if a.config.UseClickHouse {
		a.logger.Info("Connecting to ClickHouse",
			zap.String("host", a.config.ClickHouseHost),
			zap.Int("port", a.config.ClickHousePort),
			zap.String("database", a.config.ClickHouseDatabase),
			zap.String("user", a.config.ClickHouseUser),
			zap.Bool("tls", a.config.ClickHouseUseTLS),
		)
		clickhouseDB, err := ch.NewClickHouseDB(
			a.config.ClickHouseHost,
			a.config.ClickHousePort,
			a.config.ClickHouseDatabase,
			a.config.ClickHouseUser,
			a.config.ClickHousePassword,
			a.config.ClickHouseUseTLS,
		)
		if err != nil {
			return fmt.Errorf("failed to connect to ClickHouse: %w", err)
		}
		db = clickhouseDB
	} else {
		a.logger.Info("Using in-memory fixture catalog")
		db = fixtures.NewCatalog()
	}

	if err := initStorage(context.Background(), db); err != nil {
		return err
	}
	a.logger.Info("Database initialized successfully")

	a.db = db
	return nil
}

// initStorage initializes db and closes it when that fails
func initStorage(ctx context.Context, db storage.Storage) error {
	if err := db.Initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to initialize database: %w (close: %v)", err, closeErr)
		}
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

// initBot initializes the Telegram bot
func (a *App) initBot() error {
	telegramBot, err := bot.NewBot(a.config.TelegramToken, a.views, a.config.AllowedUserIDs, a.logger.Named("bot"))
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	a.logger.Info("Bot created successfully", zap.Int64s("allowed_users", a.config.AllowedUserIDs))

	a.bot = telegramBot
	return nil
}

// initHTTPServer builds the dashboard router and the webhook endpoint
func (a *App) initHTTPServer() error {
	if a.config.LogFormat != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := web.NewServer(a.db, a.views, a.logger.Named("http"), web.Options{
		RateLimitPerSecond: a.config.RateLimitPerSecond,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}
	router := srv.Router()

	// Webhook endpoint (only used in webhook mode)
	if a.bot != nil && a.config.WebhookMode {
		router.POST("/telegram-webhook", func(c *gin.Context) {
			var update tgbotapi.Update
			if err := c.ShouldBindJSON(&update); err != nil {
				a.logger.Warn("Error decoding webhook update", zap.Error(err))
				c.Status(http.StatusBadRequest)
				return
			}

			// Process update in background to respond quickly to Telegram
			go a.bot.HandleWebhookUpdate(update)

			c.Status(http.StatusOK)
		})
	}

	a.server = &http.Server{
		Addr:         ":" + a.config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return nil
}

// Run starts the application and blocks until shutdown
func (a *App) Run() error {
	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("port", a.config.Port))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	if a.bot != nil {
		if a.config.WebhookMode {
			// Webhook mode: configure webhook and wait for HTTP requests
			if err := a.bot.StartWebhook(a.config.WebhookURL); err != nil {
				return fmt.Errorf("failed to setup webhook: %w", err)
			}
			a.logger.Info("Webhook configured. Bot will receive updates via HTTP endpoint /telegram-webhook")
		} else {
			// Polling mode: actively poll Telegram servers
			go func() {
				if err := a.bot.Start(); err != nil {
					errChan <- fmt.Errorf("failed to start bot: %w", err)
				}
			}()
		}
	}

	var runErr error
	select {
	case <-sigChan:
		a.logger.Info("Shutting down...")
	case runErr = <-errChan:
		a.logger.Error("Application error", zap.Error(runErr))
	}

	if err := a.Shutdown(); err != nil {
		return err
	}
	return runErr
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if err := a.db.Close(); err != nil {
		a.logger.Error("Error closing database", zap.Error(err))
		return err
	}

	a.logger.Info("Shutdown complete")
	_ = a.logger.Sync()
	return nil
}
