package main

import (
	"fmt"

	"github.com/nanotower/c4-todo-serverless/openid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var loginURLCmd = &cobra.Command{
	Use:   "login-url",
	Short: "Print an Auth0 authorize URL for the configured client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := openid.New(cmd.Context(), cfg.Auth())
		if err != nil {
			return err
		}

		req := client.AuthCodeURL()
		log.Debugf("[OIDC] - state=%s code_verifier=%s", req.State, req.CodeVerifier)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), req.URL)
		return err
	},
}

func init() {
	rootCmd.AddCommand(loginURLCmd)
}
