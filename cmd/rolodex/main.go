package main

import (
	"log/slog"
	"os"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/internal/directory/domain"
	"github.com/felixgeelhaar/rolodex/pkg/config"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).
			Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{
			AppEnv:             "development",
			Prompt:             "Enter a command: ",
			BirthdayWindowDays: 7,
		}
	}

	// Setup logger
	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		logCfg.Format = observability.LogFormatJSON
	}
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	cli.SetApp(&cli.App{
		Directory:          domain.NewDirectory(),
		Prompt:             cfg.Prompt,
		BirthdayWindowDays: cfg.BirthdayWindowDays,
	})

	cli.Execute()
}
