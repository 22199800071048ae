// cmd/asteroids/config.go
package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-asteroids/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or save it with --out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				return config.SaveConfig(a.cfg, out)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.cfg)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the configuration to this JSON file")
	return cmd
}
