package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Dosada05/leaderboard-admin/config"
	"github.com/Dosada05/leaderboard-admin/services"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "leaderboard-admin",
		Usage: "team registration and leaderboard admin backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: func(c *cli.Context) error { return runServe(c.Context) },
			},
			{
				Name:  "generate-code",
				Usage: "print a random team code",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "length", Value: services.DefaultCodeLength, Usage: "code length"},
				},
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(c.App.Writer, services.GenerateUniqueCode(c.Int("length")))
					return err
				},
			},
			{
				Name:   "migrate",
				Usage:  "create postgres tables (STORE_DRIVER=postgres)",
				Action: func(c *cli.Context) error { return runMigrate(c.Context) },
			},
			{
				Name:   "snapshot",
				Usage:  "upload the team roster to R2 once",
				Action: func(c *cli.Context) error { return runSnapshot(c.Context) },
			},
		},
		// Без подкоманды запускаем сервер.
		Action: func(c *cli.Context) error { return runServe(c.Context) },
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfig загружает конфигурацию и настраивает логгер по LOG_LEVEL.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
