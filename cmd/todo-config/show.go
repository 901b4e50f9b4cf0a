package main

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

type ShowOpts struct {
	flagFormat string
}

var showOpts = ShowOpts{}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showOpts.flagFormat != "text" && showOpts.flagFormat != "json" {
			return fmt.Errorf("invalid format %q, must be either 'text' or 'json'", showOpts.flagFormat)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showOpts.flagFormat == "json" {
			raw, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal to JSON: %w", err)
			}
			_, err = fmt.Fprintln(out, string(raw))
			return err
		}

		auth := cfg.Auth()
		_, err = fmt.Fprintf(out, "profile:      %s\napiEndpoint:  %s\ndomain:       %s\nclientId:     %s\ncallbackUrl:  %s\n",
			cfg.Profile(), cfg.APIEndpoint(), auth.Domain, auth.ClientID, auth.CallbackURL)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showOpts.flagFormat, "format", "text", "Output format. Valid values are 'text' or 'json'")
}
