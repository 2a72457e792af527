package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ugc-mapper/internal/ctxlog"
	"ugc-mapper/internal/gen"
	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/plan"
	"ugc-mapper/internal/render"
	"ugc-mapper/internal/store"
	"ugc-mapper/internal/table"
	"ugc-mapper/internal/ugc"
)

// workspace is everything a workflow step needs about one template.
type workspace struct {
	templateID string
	template   *ugc.Instance
	registry   *ugc.Registry
	configs    []mapping.SlotConfig
	table      *table.Table
}

// load reads a template with its registry and stored configuration, and
// the table at tablePath when one is given.
func load(ctx context.Context, s *store.Store, templateID, tablePath string) (*workspace, error) {
	tpl, err := s.GetTemplate(ctx, templateID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("template %q is not imported", templateID)
	}

	if err != nil {
		return nil, err
	}

	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := s.Configs(ctx, templateID)
	if err != nil {
		return nil, err
	}

	tbl := table.Empty()
	if tablePath != "" {
		tbl, err = table.ReadFile(tablePath)
		if err != nil {
			return nil, err
		}

		ctxlog.FromContext(ctx).Debug("table loaded",
			"path", tablePath, "columns", len(tbl.Columns), "rows", tbl.Len())
	}

	return &workspace{
		templateID: templateID,
		template:   tpl,
		registry:   reg,
		configs:    configs,
		table:      tbl,
	}, nil
}

func newDeriveCmd(a *app) *cobra.Command {
	var (
		tablePath string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "derive TEMPLATE",
		Short: "Derive the default mapping configuration of a template",
		Long: `Derive one mapping configuration per template slot from the slot types,
the structure registry and the table header.

An existing configuration is kept unless --force is given.

Examples:
  ugc-mapper derive level --table minions.xlsx
  ugc-mapper derive level --table minions.tsv --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				ws, err := load(ctx, s, args[0], tablePath)
				if err != nil {
					return err
				}

				logger := ctxlog.FromContext(ctx)

				existing := ws.configs
				if force {
					existing = nil
				}

				configs := plan.DeriveIfEmpty(existing, ws.template, ws.registry, ws.table.Header())
				if len(existing) > 0 {
					logger.Info("configuration already exists, use --force to derive again",
						"template", ws.templateID, "slots", len(configs))

					return nil
				}

				if err := s.SaveConfigs(ctx, ws.templateID, configs); err != nil {
					return err
				}

				logger.Info("derived configuration", "template", ws.templateID, "slots", len(configs))
				a.dump(cmd.OutOrStdout(), "derived", configs)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tablePath, FlagTable, "", DescTable)
	cmd.Flags().BoolVar(&force, FlagForce, false, "Replace an existing configuration")

	return cmd
}

func newRematchCmd(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "rematch TEMPLATE",
		Short: "Re-point configured columns at a new table header",
		Long: `Re-resolve every column reference of a stored configuration against the
header of another table, matching by slot and field labels. References
whose label is not found keep their column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				ws, err := load(ctx, s, args[0], tablePath)
				if err != nil {
					return err
				}

				if len(ws.configs) == 0 {
					return fmt.Errorf("template %q has no configuration, run derive first", ws.templateID)
				}

				logger := ctxlog.FromContext(ctx)

				configs, changed := plan.Rematch(ws.configs, ws.table.Header())
				if !changed {
					logger.Info("configuration already matches the table", "template", ws.templateID)
					return nil
				}

				if err := s.SaveConfigs(ctx, ws.templateID, configs); err != nil {
					return err
				}

				logger.Info("rematched configuration", "template", ws.templateID)
				a.dump(cmd.OutOrStdout(), "rematched", configs)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tablePath, FlagTable, "", DescTable)
	_ = cmd.MarkFlagRequired(FlagTable)

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "check TEMPLATE",
		Short: "Report problems in a stored configuration",
		Long: `Check a stored configuration against its template, the structure
registry and, with --table, a table header. Warnings never block
generation; the command fails only on errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				ws, err := load(ctx, s, args[0], tablePath)
				if err != nil {
					return err
				}

				diags := mapping.Validate(ws.configs, ws.template, ws.registry, ws.table)
				printDiagnostics(cmd.OutOrStdout(), diags)

				if diags.HasErrors() {
					return fmt.Errorf("configuration of %q has errors: %w", ws.templateID, diags.Error())
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tablePath, FlagTable, "", DescTable)

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		tablePath string
		outDir    string
		tree      bool
	)

	cmd := &cobra.Command{
		Use:   "generate TEMPLATE",
		Short: "Fill a template from a table and write the result",
		Long: `Generate a structure instance from a template, its mapping configuration
and a table, and write it as <name>.json into the output directory.

A template without a stored configuration is generated with a derived
one, which is not saved.

Examples:
  ugc-mapper generate level --table minions.xlsx
  ugc-mapper generate level --table minions.tsv --out dist --tree`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				ws, err := load(ctx, s, args[0], tablePath)
				if err != nil {
					return err
				}

				logger := ctxlog.FromContext(ctx)
				columns := ws.table.Header()

				configs := ws.configs
				if len(configs) == 0 {
					logger.Warn("template has no configuration, using a derived one", "template", ws.templateID)

					configs = plan.Derive(ws.template, ws.registry, columns)
					configs, _ = plan.Rematch(configs, columns)
				}

				for _, d := range mapping.Validate(configs, ws.template, ws.registry, ws.table).All() {
					logger.Warn(d.Message, "code", d.Code, "slot", d.Slot, "field", d.Field)
				}

				a.dump(cmd.OutOrStdout(), "generate", configs)

				out := gen.Generate(ws.template, ws.table, configs)

				dir := outDir
				if dir == "" {
					dir = a.cfg.OutputDir
				}

				path, err := gen.WriteFile(out, dir)
				if err != nil {
					return err
				}

				logger.Info("generated structure", "template", ws.templateID, "rows", ws.table.Len(), "path", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)

				if tree {
					fmt.Fprint(cmd.OutOrStdout(), render.Tree(out))
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tablePath, FlagTable, "", DescTable)
	cmd.Flags().StringVar(&outDir, FlagOut, "", "Output directory (defaults to UGCMAP_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&tree, FlagTree, false, "Print the generated structure as a tree")
	_ = cmd.MarkFlagRequired(FlagTable)

	return cmd
}
