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

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	input string
	token string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the open positions and their cost" }
func (*holdingCmd) Usage() string {
	return `arbf holding [-i <exports>] [-t <symbol>]

  Displays the amount of each token still held in FIFO lots, and the USD
  cost of these lots.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "exports", "Export file or folder of exports to read")
	f.StringVar(&c.token, "t", "", "Only display this token symbol")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := LoadReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	holdings := report.Holdings
	if c.token != "" {
		var kept []arbfolio.Holding
		for _, h := range holdings {
			if strings.EqualFold(h.Token.Symbol, c.token) {
				kept = append(kept, h)
			}
		}
		holdings = kept
	}
	printMarkdown(renderer.HoldingsMarkdown(holdings))
	return subcommands.ExitSuccess
}
