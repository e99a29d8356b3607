// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration values with their effective values and where
each one comes from (default, file, env).`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	return cmd
}

func runList(_ *cobra.Command, _ []string) error {
	table := ux.NewTable(ux.Logger.Writer(), "Key", "Value", "Source")
	for _, key := range config.Keys() {
		if err := table.Append([]string{key, app.Conf.GetConfigStringValue(key), source(key)}); err != nil {
			return err
		}
	}
	return table.Render()
}
