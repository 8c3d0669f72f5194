package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"randomcoffee/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// inspect dumps the local pairing-history cache as a table, for checking
// what the bot believes it announced without touching Slack.
func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", os.Getenv("HISTORY_DB_PATH"), "Path to the badger history cache")
	days := flag.Int("days", 28, "How far back to list rounds")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("No database path: set -db or HISTORY_DB_PATH")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repo := repositories.NewBadgerHistoryRepository(db, slog.Default())
	since := time.Now().AddDate(0, 0, -*days)
	rounds, err := repo.Rounds(since)
	if err != nil {
		log.Fatal("Error while reading rounds: ", err)
	}

	header := fmt.Sprintf("  ====== %d round(s) in the last %d day(s) ======", len(rounds), *days)
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Announced", "Round ID", "Pairs", "Members"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, round := range rounds {
		members := ""
		for i, pair := range round.Pairs {
			if i > 0 {
				members += "  "
			}
			members += fmt.Sprintf("%s+%s", pair.A, pair.B)
		}

		// First 8 characters of the round ID are enough to tell rounds apart.
		displayID := round.ID.String()
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}

		table.Append([]string{
			round.At.Format("2006-01-02 15:04"),
			displayID,
			fmt.Sprintf("%d", len(round.Pairs)),
			members,
		})
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	// BypassLockGuard allows opening while a round is in flight.
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	return badger.Open(opts)
}
