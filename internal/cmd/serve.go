package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/accountlens/accountlens/internal/analyzer"
	"github.com/accountlens/accountlens/internal/bot"
	"github.com/accountlens/accountlens/internal/config"
	"github.com/accountlens/accountlens/internal/logger"
	"github.com/accountlens/accountlens/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the account analyzer bot",
	Long:  `Start the Telegram update loop and serve analysis requests until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Configuration loaded from %s", configPath)

	// Initialize usage-statistics storage
	store := storage.New(cfg.Storage.FilePath)
	if err := store.Load(); err != nil {
		logger.Warn("Failed to load usage statistics, starting fresh: %v", err)
	}

	// Initialize the bot with the inference engine
	engine := analyzer.New()
	b, err := bot.New(bot.Options{
		BotToken:       cfg.Telegram.BotToken,
		AdminID:        cfg.Telegram.AdminID,
		MaxRetries:     cfg.Telegram.MaxRetries,
		RetryDelayBase: cfg.Telegram.RetryDelayBase,
		RequestTimeout: cfg.Fetcher.Timeout,
		Debug:          cfg.Telegram.Debug,
	}, engine, store)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	logger.Info("Authorized as @%s", b.Username())

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, cleaning up...")
		cancel()
	}()

	// Persist usage statistics periodically
	go persistStats(ctx, store, cfg.Storage.PersistenceInterval)

	logger.Info("Starting update loop")
	b.Run(ctx)

	if err := store.Save(); err != nil {
		logger.Error("Failed to persist usage statistics on shutdown: %v", err)
	}
	logger.Info("Service stopped")
	return nil
}

func persistStats(ctx context.Context, store *storage.Storage, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := store.Save(); err != nil {
				logger.Warn("Failed to persist usage statistics: %v", err)
			}
		}
	}
}
