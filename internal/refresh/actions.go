package refresh

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"wfmu-archive/internal/directory"
	"wfmu-archive/internal/playlist"
	"wfmu-archive/models"
	"wfmu-archive/pkg/fetcher"
)

// LookupAction runs one full ingestion pass and resolves a single name
// against it. Handy for checking what a voice query would get back without
// standing up the service.
func LookupAction(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return cli.Exit("usage: resolve <name>", 1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fetch := fetcher.NewFetcher()
	store := directory.NewStore(directory.Seed(config))
	task := NewTask(config, fetch, playlist.NewResolver(fetch, 0), store, logger, nil)

	if err := task.RebuildFromSchedule(); err != nil {
		return err
	}
	if err := task.RefreshFromFeed(); err != nil {
		logger.Warn("feed refresh failed, resolving against schedule only", "error", err)
	}

	record, ok := store.Current().Resolve(query, time.Now(), config.MaxArchiveAge())
	if !ok {
		fmt.Printf("no match for %q\n", query)
		return nil
	}

	if record.Date != "" {
		fmt.Printf("%s from %s\n", record.AnnouncedTitle, record.Date)
	} else {
		fmt.Println(record.AnnouncedTitle)
	}
	fmt.Println(record.MediaURL)
	return nil
}
