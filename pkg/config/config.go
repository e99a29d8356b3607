// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/heliost/cli/pkg/constants"
	"github.com/spf13/viper"
)

// defaults holds every key the CLI reads, with its fallback value.
var defaults = map[string]any{
	constants.ConfigRPCEndpoint:       constants.MainnetRPCEndpoint,
	constants.ConfigMetadataEndpoint:  constants.PumpMetadataEndpoint,
	constants.ConfigRelayEndpoint:     constants.PumpPortalTradeEndpoint,
	constants.ConfigGeneratorEndpoint: constants.GeneratorEndpoint,
	constants.ConfigExplorerURL:       constants.SolscanURL,
	constants.ConfigPool:              constants.PumpPool,
	constants.ConfigRequestTimeout:    constants.APIRequestTimeout.String(),
	constants.ConfigArtworkDir:        constants.DefaultArtworkDir,
}

type Config struct{}

func New() *Config {
	return &Config{}
}

// SetDefaults registers the fallback value of every known key.
func SetDefaults() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

// Keys returns the known config keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// IsKnownKey reports whether key is one the CLI reads.
func IsKnownKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) ConfigFileExists() bool {
	return viper.ConfigFileUsed() != ""
}

// SetConfigValue stores key in the config file, creating it when missing.
func (c *Config) SetConfigValue(key string, value interface{}) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if key == constants.ConfigRequestTimeout {
		if _, err := time.ParseDuration(fmt.Sprint(value)); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	viper.Set(key, value)
	if c.ConfigFileExists() {
		return viper.WriteConfig()
	}
	if err := viper.SafeWriteConfig(); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return viper.WriteConfig()
		}
		return err
	}
	return nil
}

// GetConfigPath returns the path to the configuration file
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

// Endpoints is the resolved set of service locations for one deployment.
type Endpoints struct {
	RPC       string
	Metadata  string
	Relay     string
	Generator string
	Explorer  string
	Pool      string
	Timeout   time.Duration
}

// GetEndpoints resolves the service locations from flags, env, config file
// and defaults, in that order.
func (*Config) GetEndpoints() Endpoints {
	timeout := viper.GetDuration(constants.ConfigRequestTimeout)
	if timeout <= 0 {
		timeout = constants.APIRequestTimeout
	}
	return Endpoints{
		RPC:       viper.GetString(constants.ConfigRPCEndpoint),
		Metadata:  viper.GetString(constants.ConfigMetadataEndpoint),
		Relay:     viper.GetString(constants.ConfigRelayEndpoint),
		Generator: viper.GetString(constants.ConfigGeneratorEndpoint),
		Explorer:  viper.GetString(constants.ConfigExplorerURL),
		Pool:      viper.GetString(constants.ConfigPool),
		Timeout:   timeout,
	}
}
