package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	httpapi "github.com/aadishiv23/aadios/internal/api/http"
	"github.com/aadishiv23/aadios/internal/infrastructure/config"
	"github.com/aadishiv23/aadios/internal/infrastructure/logging"
	"github.com/aadishiv23/aadios/internal/infrastructure/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags default to the environment so either can set a value
	app := kingpin.New("aadios", "AadiOS desktop service")
	app.Version(httpapi.Version)
	app.HelpFlag.Short('h')
	app.Flag("port", "HTTP listen port").Short('p').Default(cfg.Server.Port).StringVar(&cfg.Server.Port)
	app.Flag("host", "HTTP listen host").Default(cfg.Server.Host).StringVar(&cfg.Server.Host)
	app.Flag("log-level", "Log level (debug, info, warn, error)").Default(cfg.Logging.Level).StringVar(&cfg.Logging.Level)
	app.Flag("dev", "Human-readable development logging").Default(strconv.FormatBool(cfg.Logging.Development)).BoolVar(&cfg.Logging.Development)
	app.Flag("db", "Preference database path, empty for memory only").Default(cfg.Preferences.DBPath).StringVar(&cfg.Preferences.DBPath)
	app.Flag("catalog-dir", "Directory of extra app catalogue files").Default(cfg.Desktop.CatalogDir).StringVar(&cfg.Desktop.CatalogDir)
	app.Flag("media-dir", "Directory media previews are resolved against").Default(cfg.Media.Dir).StringVar(&cfg.Media.Dir)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down gracefully")
	case err := <-errChan:
		_ = srv.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
