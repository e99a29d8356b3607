// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/heliost/cli/pkg/application"
	"github.com/heliost/cli/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var app *application.Heliost

func NewCmd(injectedApp *application.Heliost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for Heliost CLI",
		Long: `Customize configuration for Heliost CLI.

Values are resolved in this order: command flags, HELIOST_* environment
variables, the config file ($HOME/.heliost/cli.json), built-in defaults.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

// source names where the effective value of key comes from.
func source(key string) string {
	switch {
	case os.Getenv(envName(key)) != "":
		return "env"
	case viper.InConfig(key):
		return "file"
	default:
		return "default"
	}
}

// envName maps rpc-endpoint to HELIOST_RPC_ENDPOINT.
func envName(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
