package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/arbfolio"
	"github.com/etnz/arbfolio/renderer"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
	jsonl bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "process exports into transfers, transactions and sales" }
func (*importCmd) Usage() string {
	return `arbf import [-i <exports>] [-jsonl]

  Reads the block explorer exports (CSV or saved API JSON) of the observed
  address, nets, classifies and computes realized gains. Writes
  transfers.csv, transactions.csv and sales.csv in the data folder.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "exports", "Export file or folder of exports to read")
	f.BoolVar(&c.jsonl, "jsonl", false, "Also write transactions.jsonl, with swap details and transfers")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := LoadReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data folder: %v\n", err)
		return subcommands.ExitFailure
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"transfers.csv", func(w io.Writer) error { return arbfolio.WriteTransfers(w, report.Transfers) }},
		{"transactions.csv", func(w io.Writer) error { return arbfolio.WriteTransactions(w, report.Transactions) }},
		{"sales.csv", func(w io.Writer) error { return arbfolio.WriteSales(w, report.Sales) }},
	}
	if c.jsonl {
		outputs = append(outputs, struct {
			name  string
			write func(io.Writer) error
		}{"transactions.jsonl", func(w io.Writer) error { return arbfolio.EncodeTransactions(w, report.Transactions) }})
	}

	for _, o := range outputs {
		if err := writeFile(DataPath(o.name), o.write); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", DataPath(o.name), err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}

// writeFile creates or truncates name and writes it.
func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
