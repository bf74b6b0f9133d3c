package server

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"wfmu-archive/internal/directory"
	"wfmu-archive/internal/history"
	"wfmu-archive/internal/playlist"
	"wfmu-archive/internal/refresh"
	"wfmu-archive/models"
	"wfmu-archive/pkg/fetcher"
)

// ServeAction wires the engine together and runs it: seeded store, refresh
// task in the background, HTTP surface in the foreground.
func ServeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// A local .env may carry the PORT override.
	_ = godotenv.Load()

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("refresh-minutes") {
		config.RefreshMinutes = c.Int("refresh-minutes")
	}

	var cycles refresh.CycleLog
	if !c.Bool("no-history") {
		db, err := history.Open(config.HistoryDBPath)
		if err != nil {
			logger.Warn("refresh history unavailable", "error", err)
		} else {
			defer db.Close()
			cycles = db
		}
	}

	fetch := fetcher.NewFetcher()
	resolver := playlist.NewResolver(fetch, 0)
	store := directory.NewStore(directory.Seed(config))

	task := refresh.NewTask(config, fetch, resolver, store, logger, cycles)
	go task.Run(c.Context)

	return New(config, store, logger).Listen()
}
