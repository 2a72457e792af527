package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ugc-mapper/internal/ctxlog"
	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/store"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Export or import a template's mapping configuration",
		Long: `Mapping configurations are stored with their template. Export one to a
YAML file to edit it by hand, then import it back.`,
	}

	exportCmd := &cobra.Command{
		Use:   "export TEMPLATE FILE",
		Short: "Write a mapping configuration to a YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				templateID, path := args[0], args[1]

				_, err := s.GetTemplate(ctx, templateID)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("template %q is not imported", templateID)
				}

				if err != nil {
					return err
				}

				configs, err := s.Configs(ctx, templateID)
				if err != nil {
					return err
				}

				if err := mapping.WriteFile(mapping.NewFile(templateID, configs), path); err != nil {
					return err
				}

				ctxlog.FromContext(ctx).Info("exported configuration",
					"template", templateID, "slots", len(configs), "path", path)

				return nil
			})
		},
	}

	importCmd := &cobra.Command{
		Use:   "import TEMPLATE FILE",
		Short: "Replace a mapping configuration from a YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, path := args[0], args[1]

			f, err := mapping.LoadFile(path)
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				logger := ctxlog.FromContext(ctx)

				_, err := s.GetTemplate(ctx, templateID)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("template %q is not imported", templateID)
				}

				if err != nil {
					return err
				}

				if f.Template != "" && f.Template != templateID {
					logger.Warn("configuration file was exported from another template",
						"file_template", f.Template, "template", templateID)
				}

				if err := s.SaveConfigs(ctx, templateID, f.Slots); err != nil {
					return err
				}

				logger.Info("imported configuration", "template", templateID, "slots", len(f.Slots))
				a.dump(cmd.OutOrStdout(), "imported", f.Slots)

				return nil
			})
		},
	}

	cmd.AddCommand(exportCmd, importCmd)

	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every structure, template and configuration in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
				if err := s.Reset(ctx); err != nil {
					return fmt.Errorf("reset workspace: %w", err)
				}

				ctxlog.FromContext(ctx).Info("workspace cleared", "store", a.cfg.StorePath)

				return nil
			})
		},
	}
}
