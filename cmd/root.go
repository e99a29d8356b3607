// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heliost/cli/cmd/configcmd"
	"github.com/heliost/cli/cmd/deploycmd"
	"github.com/heliost/cli/pkg/application"
	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/prompts"
	"github.com/heliost/cli/pkg/ux"
	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const loggerName = "heliost"

var (
	app        *application.Heliost
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.3.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	if app == nil {
		app = application.New()
	}
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "heliost",
		Long: `Heliost CLI - launch a token on Solana through pump.fun.

COMMAND OVERVIEW:

  deploy-token  Walk through the token parameters and deploy the token
  config        Read and write CLI settings (endpoints, timeouts)

QUICK START:

  # Deploy a token, composing the artwork from ./images
  heliost deploy-token --network solana

  # Use an existing image and prefill suggestions
  heliost deploy-token --network solana --image logo.png --suggest

  # Point at a private RPC node
  heliost config set rpc-endpoint https://my-node.example.com

For detailed command help, use: heliost <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.heliost/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	rootCmd.AddCommand(deploycmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	switch {
	case flagChanged(cmd, "debug"):
		setLevel(luxlog.Level(level.Debug))
	case flagChanged(cmd, "verbose"):
		setLevel(luxlog.Level(level.Info))
	case flagChanged(cmd, "quiet"):
		setLevel(luxlog.Level(level.Error))
	case logLevel != "":
		if lvl, err := luxlog.ToLevel(logLevel); err == nil {
			setLevel(lvl)
		}
	}

	mode := prompts.DetectMode(nonInteractive)
	app.Setup(baseDir, log, config.New(), prompts.NewPrompterForMode(mode), nil)
	app.Log.Debug("prompt mode", zap.Stringer("mode", mode))

	initConfig()
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func setLevel(lvl luxlog.Level) {
	logFactory.SetLogLevel(loggerName, lvl)
	logFactory.SetDisplayLevel(loggerName, lvl)
}

func setupEnv() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get home directory %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(home, constants.BaseDirName)

	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(level.Info)
	// quiet by default, flags adjust it once parsed
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// caller tracking should show the real source, not the ux wrapper
	luxlog.RegisterInternalPackages("github.com/heliost/cli/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(loggerName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// user output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(app.GetBaseDir())
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // cli.json
	}
	config.SetDefaults()

	// HELIOST_RPC_ENDPOINT -> rpc-endpoint, etc.
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// no config file is normal, defaults apply
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
