package history

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"wfmu-archive/models"
)

// HistoryAction prints the most recent refresh cycles.
func HistoryAction(c *cli.Context) error {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := Open(config.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	cycles, err := db.ListCycles(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list refresh cycles: %w", err)
	}

	if len(cycles) == 0 {
		fmt.Println("No refresh cycles recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-8s %-8s %-8s %-30s\n",
		"ID", "When", "Source", "Entries", "Keys", "Took", "Error")
	fmt.Println(strings.Repeat("-", 100))

	for _, cycle := range cycles {
		fmt.Printf("%-6d %-20s %-10s %-8d %-8d %-8s %-30s\n",
			cycle.CycleID,
			cycle.CreatedAt.Format("2006-01-02 15:04:05"),
			cycle.Source,
			cycle.EntryCount,
			cycle.TableSize,
			fmt.Sprintf("%dms", cycle.TookMS),
			cycle.Error,
		)
	}

	fmt.Printf("\nTotal: %d cycles\n", len(cycles))
	return nil
}
