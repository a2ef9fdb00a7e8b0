// Package main implements list-models, a diagnostic command that prints the
// Gemini models the configured API key can use for content generation.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/phrazzld/email-writer-api/internal/config"
	"github.com/phrazzld/email-writer-api/internal/platform/gemini"
	"github.com/spf13/cobra"
)

// listFunc lists generation-capable model names.
type listFunc func(ctx context.Context, cfg config.LLMConfig) ([]string, error)

func newRootCmd(list listFunc) *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:           "list-models",
		Short:         "List Gemini models that support content generation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOptions(opts)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			names, err := list(cmd.Context(), cfg.LLM)
			if err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				_, err = fmt.Fprintln(out, "No models support generateContent.")
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.EnvFile, "env-file", opts.EnvFile, "dotenv file to load before reading the environment")
	cmd.Flags().StringSliceVar(&opts.ConfigPaths, "config-path", opts.ConfigPaths, "directories searched for config.yaml")

	return cmd
}

func main() {
	if err := newRootCmd(gemini.ListModels).ExecuteContext(context.Background()); err != nil {
		log.Fatalln(err.Error())
	}
}
