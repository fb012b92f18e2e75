package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sidebar/pkg/logger"
)

func printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Build the sidebar once and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log := logger.NewStructuredLogger(cmd.ErrOrStderr(), module, version, cfg.LogLevel, cfg.LogFormat)

			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			sections, err := a.builder.Menu(cmd.Context())
			if err != nil {
				return fmt.Errorf("build menu: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sections)
		},
	}
}
