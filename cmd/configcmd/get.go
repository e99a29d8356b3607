// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/ux"
	"github.com/spf13/cobra"
)

var getShowSource bool

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value, showing the effective value after merging all config sources.

Use --source to also show where the value came from (default, file, env).

Examples:
  heliost config get rpc-endpoint
  heliost config get --source request-timeout`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	cmd.Flags().BoolVar(&getShowSource, "source", false, "Show the source of the value")

	return cmd
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q, run 'heliost config list' to see them", key)
	}
	value := app.Conf.GetConfigStringValue(key)
	if getShowSource {
		ux.Logger.PrintToUser("%s = %s (source: %s)", key, value, source(key))
	} else {
		ux.Logger.PrintToUser("%s = %s", key, value)
	}
	return nil
}
