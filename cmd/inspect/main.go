package main

import (
	"chat-shell/fixtures"
	"chat-shell/internal"
	"chat-shell/repositories"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	// Empty prefix lists every collection
	prefix := flag.String("prefix", "", "Prefix to scan (user:, msg:, group:, chronicle:, owner)")
	flag.Parse()

	if err := run(os.Stdout, *prefix); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run seeds a fresh directory and prints its raw records.
func run(out io.Writer, prefix string) error {
	directory, err := repositories.OpenDirectory(logs.GetLoggerFromLevel(slog.LevelWarn))
	if err != nil {
		return err
	}
	defer func() { _ = directory.Close() }()
	if err = directory.LoadDataset(fixtures.Seed(time.Now())); err != nil {
		return err
	}

	entries, err := directory.Inspect(prefix)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Key", "Collection", "Position", "ID", "Detail"})
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

	for _, entry := range entries {
		row := internal.DefaultMapper(entry)
		table.Append([]string{row.Key, row.Collection, row.Position, row.EntityID, row.Detail})
	}
	table.Render()
	return nil
}
