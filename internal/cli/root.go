// Package cli implements the collq command: load a JSON array of records
// into a collections.List, narrow and order it, then list, aggregate, search
// or index it.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/hasbyte1/go-enumerable/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfg *config.Config
	log *logging.Logger

	configPath string
	where      []string
	orderBy    string
	desc       bool
}

// NewRootCommand builds the collq command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "collq",
		Short: "Query a JSON array of records from the command line",
		Long: `collq loads a JSON array of objects, optionally filters it with --where
and sorts it with --order-by, then runs one of its subcommands.

Fields are addressed with dot paths, e.g. "user.address.city".

Commands:
  list     Print the selected records
  stats    Count, sum, average, max and min of a numeric field
  first    Find the first (or last) record matching path=value
  index    Index the records by a key field, rejecting duplicate keys`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./collq.yaml or $HOME/.collq/collq.yaml)")
	flags.StringP("input", "i", "-", `JSON input file, "-" for stdin`)
	flags.String("log-level", string(logging.LevelInfo), "logging level (debug, info, warn, error)")
	flags.String("on-duplicate", config.OnDuplicateSkip, `duplicate key policy for index ("skip" or "fail")`)
	flags.Bool("indent", true, "indent JSON output")
	flags.StringArrayVarP(&a.where, "where", "w", nil, "keep records where path=value (repeatable)")
	flags.StringVar(&a.orderBy, "order-by", "", "sort records by the field at this path")
	flags.BoolVar(&a.desc, "desc", false, "sort in descending order")

	root.AddCommand(
		newListCommand(a),
		newStatsCommand(a),
		newFirstCommand(a),
		newIndexCommand(a),
	)
	return root
}

// Execute runs the collq command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = &logging.Logger{
		Out:   cmd.ErrOrStderr(),
		Level: cfg.Level(),
	}
	return nil
}

func (a *app) input(cmd *cobra.Command) (io.ReadCloser, error) {
	if a.cfg.Input == "" || a.cfg.Input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}
