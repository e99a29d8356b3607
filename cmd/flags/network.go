// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	networkFlag = "network"
)

// AddNetworkFlagToCmd adds --network and rejects any value but solana before
// the command runs.
func AddNetworkFlagToCmd(cmd *cobra.Command, network *string) {
	cmd.Flags().StringVar(network, networkFlag, "", "blockchain network (only \"solana\" is supported)")

	networkPreRun := func(*cobra.Command, []string) error {
		_, err := models.NetworkFromString(*network)
		return err
	}

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return networkPreRun(cmd, args)
	}
}

var endpointKeys = []string{
	constants.ConfigRPCEndpoint,
	constants.ConfigMetadataEndpoint,
	constants.ConfigRelayEndpoint,
	constants.ConfigGeneratorEndpoint,
	constants.ConfigExplorerURL,
	constants.ConfigArtworkDir,
}

// EndpointFlagSet holds the service endpoint overrides.
func EndpointFlagSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("Endpoint Flags", pflag.ContinueOnError)
	set.String(constants.ConfigRPCEndpoint, "", "Solana RPC endpoint used to broadcast")
	set.String(constants.ConfigMetadataEndpoint, "", "metadata upload endpoint")
	set.String(constants.ConfigRelayEndpoint, "", "transaction relay endpoint")
	set.String(constants.ConfigGeneratorEndpoint, "", "token parameter generator endpoint")
	set.String(constants.ConfigExplorerURL, "", "block explorer base URL")
	set.String(constants.ConfigArtworkDir, "", "directory of source images for the token artwork")
	return set
}

// AddEndpointFlagsToCmd exposes the service endpoints as flags. Flags take
// precedence over env and config file through viper.
func AddEndpointFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(EndpointFlagSet())
	for _, name := range endpointKeys {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
}
