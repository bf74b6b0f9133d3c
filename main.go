package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"wfmu-archive/internal/history"
	"wfmu-archive/internal/refresh"
	"wfmu-archive/internal/server"
)

func main() {
	configFlag := &cli.StringFlag{
		Name:  "config",
		Value: "config.yaml",
		Usage: "path to the YAML config file (missing file uses defaults)",
	}

	app := &cli.App{
		Name:  "wfmu-archive",
		Usage: "continuously refreshed, fuzzy-searchable directory of WFMU archive shows",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the directory service",
				Flags: []cli.Flag{
					configFlag,
					&cli.IntFlag{Name: "workers", Usage: "playlist resolution worker count"},
					&cli.IntFlag{Name: "refresh-minutes", Usage: "feed refresh interval in minutes"},
					&cli.BoolFlag{Name: "no-history", Usage: "skip recording refresh cycles"},
					&cli.BoolFlag{Name: "quiet", Usage: "log errors only"},
				},
				Action: server.ServeAction,
			},
			{
				Name:      "resolve",
				Usage:     "one-shot ingest and name lookup",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{configFlag},
				Action:    refresh.LookupAction,
			},
			{
				Name:  "history",
				Usage: "list recent refresh cycles",
				Flags: []cli.Flag{
					configFlag,
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "max cycles to list"},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
