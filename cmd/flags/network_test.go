// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"

	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNetworkFlag(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{[]string{"--network", "solana"}, false},
		{[]string{"--network", "ethereum"}, true},
		{[]string{}, true},
	}
	for _, tt := range tests {
		var network string
		ran := false
		cmd := &cobra.Command{
			Use:  "deploy-token",
			RunE: func(*cobra.Command, []string) error { ran = true; return nil },
		}
		AddNetworkFlagToCmd(cmd, &network)
		cmd.SetArgs(tt.args)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		err := cmd.Execute()
		if tt.wantErr {
			require.ErrorIs(t, err, models.ErrUnsupportedNetwork)
			require.False(t, ran, "command body must not run")
		} else {
			require.NoError(t, err)
			require.True(t, ran)
		}
	}
}

func TestNetworkFlagKeepsExistingPreRun(t *testing.T) {
	var network string
	calls := 0
	cmd := &cobra.Command{
		Use:     "deploy-token",
		PreRunE: func(*cobra.Command, []string) error { calls++; return nil },
		RunE:    func(*cobra.Command, []string) error { return nil },
	}
	AddNetworkFlagToCmd(cmd, &network)
	cmd.SetArgs([]string{"--network", "solana"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, 1, calls)
}

func TestEndpointFlagsBindViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "deploy-token", RunE: func(*cobra.Command, []string) error { return nil }}
	AddEndpointFlagsToCmd(cmd)
	cmd.SetArgs([]string{"--rpc-endpoint", "http://127.0.0.1:8899"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "http://127.0.0.1:8899", viper.GetString(constants.ConfigRPCEndpoint))
}

func TestEndpointFlagSet(t *testing.T) {
	set := EndpointFlagSet()
	for _, name := range endpointKeys {
		require.NotNil(t, set.Lookup(name), name)
	}
	require.NoError(t, set.Parse([]string{"--relay-endpoint", "http://relay.test"}))
	v, err := set.GetString(constants.ConfigRelayEndpoint)
	require.NoError(t, err)
	require.Equal(t, "http://relay.test", v)
}
