// Package cmd implements the CLI application turning the activity of an
// address into accounting records.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/arbfolio"
	"github.com/etnz/arbfolio/ingest"
	"github.com/etnz/arbfolio/refdata"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "processing")
	c.Register(&fmtCmd{}, "processing")
	c.Register(&classifyCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")
	c.Register(&topicCmd{}, "help")
}

const (
	EnvAddress  = "ARBF_ADDRESS"
	EnvDataDir  = "ARBF_DATA_DIR"
	EnvRefDir   = "ARBF_REF_DIR"
	EnvLogLevel = "ARBF_LOG_LEVEL"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var address = flag.String("address", "", "Observed address, whose activity is processed")
var dataDir = flag.String("data-dir", "data", "Folder where processed files are written")
var refDir = flag.String("ref-dir", filepath.Join("data", "ref"), "Folder of the reference tables (tokens.toml, categories.toml, overrides.toml)")
var logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")

// envFlags maps the global flags to the environment variables providing their default.
var envFlags = map[string]string{
	"address":   EnvAddress,
	"data-dir":  EnvDataDir,
	"ref-dir":   EnvRefDir,
	"log-level": EnvLogLevel,
}

// LoadEnv loads the .env file, if any, and sets the global flags from the
// environment. It must be called before parsing the command line, so that
// flags still take precedence.
func LoadEnv(flags *flag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// ObservedAddress returns the validated observed address.
func ObservedAddress() (string, error) {
	if *address == "" {
		return "", fmt.Errorf("%w: no observed address, use -address or %s", arbfolio.ErrConfiguration, EnvAddress)
	}
	if !common.IsHexAddress(*address) {
		return "", &arbfolio.ConfigError{Table: "flags", Key: "address", Value: *address}
	}
	return arbfolio.NormalizeAddress(*address), nil
}

// DataPath returns the path of a processed file.
func DataPath(name string) string { return filepath.Join(*dataDir, name) }

// LoadReport reads the exports found in input, a file or a folder, and
// processes them with the reference tables.
func LoadReport(input string) (*arbfolio.Report, error) {
	observed, err := ObservedAddress()
	if err != nil {
		return nil, err
	}
	tables, err := refdata.Load(*refDir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	var rows []arbfolio.Row
	if info.IsDir() {
		rows, err = ingest.ReadDir(input, observed)
	} else {
		rows, err = ingest.ReadFile(input, observed)
	}
	if err != nil {
		return nil, err
	}

	transfers, err := arbfolio.NormalizeRows(rows, observed, tables.Tokens)
	if err != nil {
		return nil, err
	}
	return arbfolio.Process(transfers, tables)
}
