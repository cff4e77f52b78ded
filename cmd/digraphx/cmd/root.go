package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose    bool
	configFile string
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := godotenv.Load(); err != nil {
		log.Debug("digraphx: no .env file found, continuing with process environment")
	}

	rootCmd := &cobra.Command{
		Use:          "digraphx",
		Short:        "Parametric optimization on weighted directed graphs via Howard's method",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			return initConfig()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file (optional; flags and DIGRAPHX_* env vars always win)")

	rootCmd.AddCommand(newSolveCommand(ctx))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("digraphx: command failed")
		os.Exit(1)
	}
}

// initConfig wires viper to read DIGRAPHX_* environment variables and,
// if given, a config file, before any subcommand's RunE executes.
func initConfig() error {
	viper.SetEnvPrefix("DIGRAPHX")
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", configFile)
	}

	return nil
}
