package main

import (
	"os"

	"github.com/nanotower/c4-todo-serverless/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type RootOpts struct {
	flagProfile  string
	flagFile     string
	flagLogLevel string
	overrides    config.Overrides
}

var rootOpts = RootOpts{}

// getenv is the environment lookup used when resolving configuration.
var getenv = os.Getenv

var rootCmd = &cobra.Command{
	Use:          "todo-config",
	Short:        "Resolve and expose the todo web client configuration",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(rootOpts.flagLogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.flagProfile, "profile", "", "Built-in profile (dev, local); defaults to $"+config.EnvProfile+" or dev")
	flags.StringVar(&rootOpts.flagFile, "config-file", "", "JSON configuration file; defaults to $"+config.EnvFile)
	flags.StringVar(&rootOpts.flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&rootOpts.overrides.APIEndpoint, "api-endpoint", "", "Override the API endpoint")
	flags.StringVar(&rootOpts.overrides.AuthDomain, "auth-domain", "", "Override the Auth0 domain")
	flags.StringVar(&rootOpts.overrides.AuthClientID, "auth-client-id", "", "Override the Auth0 client id")
	flags.StringVar(&rootOpts.overrides.AuthCallbackURL, "auth-callback-url", "", "Override the Auth0 callback URL")
}

func loadConfig() (*config.Config, error) {
	return config.Load(config.Options{
		Profile:   rootOpts.flagProfile,
		File:      rootOpts.flagFile,
		Overrides: rootOpts.overrides,
		Getenv:    getenv,
	})
}
