// Package cli implements the ugc-mapper command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"ugc-mapper/internal/config"
	"ugc-mapper/internal/ctxlog"
	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/store"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg   *config.Config
	debug bool

	flagStore     string
	flagLogLevel  string
	flagLogFormat string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ugc-mapper",
		Short: "Fill UGC structure templates from tabular data",
		Long: `ugc-mapper converts rows of a table into a typed UGC structure instance.

Typical workflow:
  ugc-mapper structure import minion.json
  ugc-mapper template import level.json --id level
  ugc-mapper derive level --table minions.xlsx
  ugc-mapper generate level --table minions.xlsx --out dist

Settings are read from UGCMAP_STORE, UGCMAP_LOG_LEVEL, UGCMAP_LOG_FORMAT and
UGCMAP_OUTPUT_DIR (a .env file in the working directory is honored); flags
take precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flagStore, FlagStore, "", DescStore)
	pf.StringVar(&a.flagLogLevel, FlagLogLevel, "", DescLogLevel)
	pf.StringVar(&a.flagLogFormat, FlagLogFormat, "", DescLogFormat)
	pf.BoolVar(&a.debug, FlagDebug, false, DescDebug)

	root.AddCommand(
		newStructureCmd(a),
		newTemplateCmd(a),
		newDeriveCmd(a),
		newRematchCmd(a),
		newCheckCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
		newResetCmd(a),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd()

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// setup resolves the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	if a.flagStore != "" {
		cfg.StorePath = a.flagStore
	}

	if a.flagLogLevel != "" {
		cfg.LogLevel = a.flagLogLevel
	}

	if a.flagLogFormat != "" {
		cfg.LogFormat = a.flagLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))

	logger.Debug("configuration loaded", "store", cfg.StorePath, "output", cfg.OutputDir)

	return nil
}

// withStore opens the workspace for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) error {
	s, err := store.Open(a.cfg.StorePath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return fn(cmd.Context(), s)
}

// dump writes configurations to w when --debug is set.
func (a *app) dump(w io.Writer, label string, configs []mapping.SlotConfig) {
	if !a.debug {
		return
	}

	fmt.Fprintf(w, "--- %s ---\n", label)
	spew.Fdump(w, configs)
}
