package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ugc-mapper/internal/ctxlog"
	"ugc-mapper/internal/store"
	"ugc-mapper/internal/ugc"
)

func newStructureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "structure",
		Short: "Manage structure definitions",
		Long: `Structure definitions describe the fields of a structure id. They are
used to derive field mappings for Struct and StructList slots.`,
	}

	var (
		id     string
		prompt bool
	)

	importCmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import structure definition documents",
		Long: `Import one or more structure definition JSON documents.

The registry id is --id when given, else the document's structId, else its
basic_struct_id, else the file name without extension. An existing
definition with the same id is replaced. A document that fails to parse
aborts the whole import.

Examples:
  ugc-mapper structure import minion.json boss.json
  ugc-mapper structure import 1077936130.json --id 1077936130
  ugc-mapper structure import export.json --prompt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" && len(args) > 1 {
				return fmt.Errorf("--%s applies to a single file", FlagID)
			}

			defs := make([]*ugc.Definition, 0, len(args))

			for _, path := range args {
				def, err := ugc.LoadDefinitionFile(path, id)
				if err != nil {
					return err
				}

				if prompt {
					def.ID, err = promptID("structure", def.ID)
					if err != nil {
						return err
					}
				}

				defs = append(defs, def)
			}

			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				if err := s.PutDefinitions(ctx, defs); err != nil {
					return err
				}

				logger := ctxlog.FromContext(ctx)

				for _, def := range defs {
					logger.Info("imported structure", "id", def.ID, "name", def.Name, "fields", len(def.Slots()))
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", def.ID, def.Name)
				}

				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&id, FlagID, "", "Registry id, overriding the document")
	importCmd.Flags().BoolVar(&prompt, FlagPrompt, false, "Ask for the registry id interactively")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List imported structure definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				list, err := s.Definitions(ctx)
				if err != nil {
					return err
				}

				printSummaries(cmd.OutOrStdout(), "structures", list)

				return nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove ID...",
		Short: "Remove structure definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				for _, id := range args {
					if err := s.RemoveDefinition(ctx, id); err != nil {
						return fmt.Errorf("remove structure: %w", err)
					}

					ctxlog.FromContext(ctx).Info("removed structure", "id", id)
				}

				return nil
			})
		},
	}

	cmd.AddCommand(importCmd, listCmd, removeCmd)

	return cmd
}

func newTemplateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage target templates",
		Long: `Templates are the structure instances that generation fills in. Each
template has its own mapping configuration.`,
	}

	var id string

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a template document",
		Long: `Import a target structure instance as a template.

The template id is --id when given, else the file name without extension.
Re-importing under an existing id replaces the template but keeps its
mapping configuration.

Examples:
  ugc-mapper template import level.json
  ugc-mapper template import export/data.json --id level`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := ugc.LoadTemplateFile(args[0])
			if err != nil {
				return err
			}

			tplID := strings.TrimSpace(id)
			if tplID == "" {
				base := filepath.Base(args[0])
				tplID = strings.TrimSuffix(base, filepath.Ext(base))
			}

			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				if err := s.PutTemplate(ctx, tplID, in); err != nil {
					return err
				}

				ctxlog.FromContext(ctx).Info("imported template",
					"id", tplID, "structId", in.StructID.String(), "slots", len(in.Fields))
				fmt.Fprintln(cmd.OutOrStdout(), tplID)

				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&id, FlagID, "", "Template id (defaults to the file name)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List imported templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				list, err := s.Templates(ctx)
				if err != nil {
					return err
				}

				printSummaries(cmd.OutOrStdout(), "templates", list)

				return nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove ID...",
		Short: "Remove templates and their mapping configurations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				for _, id := range args {
					if err := s.RemoveTemplate(ctx, id); err != nil {
						return fmt.Errorf("remove template: %w", err)
					}

					ctxlog.FromContext(ctx).Info("removed template", "id", id)
				}

				return nil
			})
		},
	}

	cmd.AddCommand(importCmd, listCmd, removeCmd)

	return cmd
}
