package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/arbfolio"
	"github.com/etnz/arbfolio/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	input string
	start string
	end   string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains per token (FIFO)" }
func (*gainsCmd) Usage() string {
	return `arbf gains [-i <exports>] [-s <datetime>] [-d <datetime>]

  Processes the exports and displays the realized gains per token. Lots are
  always matched over the whole history, -s and -d only filter the sales
  displayed.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "exports", "Export file or folder of exports to read")
	f.StringVar(&c.start, "s", "", "Only show sales at or after this datetime (e.g. 2024-01-01)")
	f.StringVar(&c.end, "d", "", "Only show sales before this datetime (e.g. 2025-01-01)")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := LoadReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(filterSales(report.Sales, c.start, c.end)))
	return subcommands.ExitSuccess
}

// filterSales keeps the sales in [start, end), datetimes are compared as text.
func filterSales(sales []arbfolio.Sale, start, end string) []arbfolio.Sale {
	var kept []arbfolio.Sale
	for _, s := range sales {
		if start != "" && strings.Compare(s.Datetime, start) < 0 {
			continue
		}
		if end != "" && strings.Compare(s.Datetime, end) >= 0 {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
