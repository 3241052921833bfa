package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"github.com/etnz/arbfolio"
	"github.com/etnz/arbfolio/renderer"
	"github.com/google/subcommands"
)

// reportTask is a report to publish, it is also the front matter template data.
type reportTask struct {
	Report string // summary, gains or transactions
	Period string // year, "all" for the whole history
	md     string
}

type publishCmd struct {
	input          string
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates all the reports as markdown files" }

func (*publishCmd) Usage() string {
	return `arbf publish [-i <exports>] [-o <dir>] [-frontmatter <file>]

  Generates the summary, the transactions and the realized gains, for the
  whole history and for each year, and saves them to a structured directory
  tree.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "exports", "Export file or folder of exports to read")
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	report, err := LoadReport(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	for _, task := range publishTasks(report) {
		md := task.md
		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to render front matter for %s report %s: %v\n", task.Report, task.Period, err)
				continue
			}
			md = fm + "\n" + md
		}

		fullPath := filepath.Join(c.outputDir, task.Report, task.Period+".md")
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output directory for file %s: %v\n", fullPath, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", fullPath, err)
			return subcommands.ExitFailure
		}
		slog.Info("generated report", "report", task.Report, "period", task.Period)
	}

	return subcommands.ExitSuccess
}

// publishTasks renders every report, for the whole history and per year.
func publishTasks(report *arbfolio.Report) []reportTask {
	tasks := []reportTask{
		{Report: "summary", Period: "all", md: renderer.SummaryMarkdown(report)},
		{Report: "transactions", Period: "all", md: renderer.TransactionsMarkdown(report.Transactions)},
		{Report: "gains", Period: "all", md: renderer.GainsMarkdown(report.Sales)},
	}
	for _, year := range salesYears(report.Sales) {
		from, to := fmt.Sprintf("%04d", year), fmt.Sprintf("%04d", year+1)
		tasks = append(tasks, reportTask{
			Report: "gains",
			Period: from,
			md:     renderer.GainsMarkdown(filterSales(report.Sales, from, to)),
		})
	}
	return tasks
}

// salesYears returns the sorted years with at least one sale.
func salesYears(sales []arbfolio.Sale) []int {
	seen := make(map[int]bool)
	var years []int
	for _, s := range sales {
		if len(s.Datetime) < 4 {
			continue
		}
		y, err := strconv.Atoi(s.Datetime[:4])
		if err != nil || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
