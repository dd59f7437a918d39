package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/browse/internal/config"
	logpkg "github.com/kailas-cloud/browse/internal/logger"
	"github.com/kailas-cloud/browse/internal/version"
)

var (
	// envFlag selects config/<env>.yaml and the logger preset.
	envFlag string
	// configFlag points at an explicit config file and overrides envFlag lookup.
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:           "browse",
	Short:         "Browse home page service",
	Long:          "browse serves the repository home page: the subject taxonomy and the total document count.",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("browse version {{.Version}} (" + version.Commit + ")\n")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "",
		"Environment: local, dev, docker, prod (default: $ENV or local)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to a config file (default: config/<env>.yaml)")
}

// resolveEnv returns the effective environment.
// Precedence: --env flag > ENV variable > local
func resolveEnv() string {
	if envFlag != "" {
		return envFlag
	}
	return config.GetEnv()
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (string, config.Config, *zap.Logger, error) {
	env := resolveEnv()

	var (
		cfg config.Config
		err error
	)
	if configFlag != "" {
		cfg, err = config.LoadFile(configFlag)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return "", config.Config{}, nil, err
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return "", config.Config{}, nil, err
	}
	return env, cfg, logger, nil
}
