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

// classifyCmd holds the flags for the 'classify' subcommand.
type classifyCmd struct {
	input    string
	category string
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "list transactions with their category" }
func (*classifyCmd) Usage() string {
	return `arbf classify [-i <exports>] [-c <category>]

  Processes the exports and lists the classified transactions. Use
  -c Unknown to find the transactions missing from the categories table.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "exports", "Export file or folder of exports to read")
	f.StringVar(&c.category, "c", "", "Only list this category (e.g. Swap, Unknown, UnknownSwap)")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := LoadReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(filterCategory(report.Transactions, c.category)))
	return subcommands.ExitSuccess
}

// filterCategory keeps the transactions whose category or swap kind is category.
func filterCategory(transactions []arbfolio.Transaction, category string) []arbfolio.Transaction {
	if category == "" {
		return transactions
	}
	var kept []arbfolio.Transaction
	for _, tx := range transactions {
		c := tx.Category
		match := strings.EqualFold(string(c.Kind), category) || strings.EqualFold(c.String(), category)
		if c.Swap != nil && strings.EqualFold(c.Swap.SwapKind(), category) {
			match = true
		}
		if match {
			kept = append(kept, tx)
		}
	}
	return kept
}
