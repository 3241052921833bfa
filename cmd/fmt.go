package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/arbfolio/refdata"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the reference tables into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `arbf fmt [-check]

  Validates the reference tables (tokens.toml, categories.toml and
  overrides.toml) found in the reference folder, and rewrites them in place
  with normalized, sorted keys. Missing tables are ignored.

  With -check, nothing is written, and the command fails if a table is not
  in canonical form.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Only report the tables that are not formatted")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status := subcommands.ExitSuccess
	for _, name := range []string{refdata.TokensFile, refdata.CategoriesFile, refdata.OverridesFile} {
		path := filepath.Join(*refDir, name)
		changed, err := formatTable(path, name, !c.check)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		if changed && c.check {
			fmt.Printf("%s is not formatted\n", path)
			status = subcommands.ExitFailure
		}
	}
	return status
}

// formatTable formats the table at path, it reports whether the canonical
// form differs from the file.
func formatTable(path, name string, write bool) (bool, error) {
	original, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var formatted bytes.Buffer
	if err := refdata.Format(name, bytes.NewReader(original), &formatted); err != nil {
		return false, err
	}
	if bytes.Equal(original, formatted.Bytes()) {
		return false, nil
	}
	if write {
		if err := os.WriteFile(path, formatted.Bytes(), 0644); err != nil {
			return true, err
		}
	}
	return true, nil
}
