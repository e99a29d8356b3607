// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/heliost/cli/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Keys:
  rpc-endpoint        - Solana RPC node used to broadcast
  metadata-endpoint   - Token metadata upload endpoint
  relay-endpoint      - Transaction construction endpoint
  generator-endpoint  - Token parameter suggestion endpoint
  explorer-url        - Block explorer base URL for transaction links
  pool                - Launch pool passed to the relay
  request-timeout     - Timeout of each network call (e.g. 30s)
  artwork-dir         - Directory of source images for the token artwork

Examples:
  heliost config set rpc-endpoint https://my-node.example.com
  heliost config set request-timeout 45s`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
	return cmd
}

func runSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	app.Log.Debug("config value saved", "key", key, "config-file", viper.ConfigFileUsed())
	ux.Logger.PrintToUser("Set %s = %s", key, value)
	return nil
}
