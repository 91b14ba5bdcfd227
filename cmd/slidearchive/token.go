package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slidearchive/config"
	"slidearchive/internal/adapters/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed API token for POST /api/slides",
		Long: `Token signs an HS256 token with API_JWT_SECRET.

Examples:
  slidearchive token --subject ci
  slidearchive token --subject reporting-bot --ttl 24h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := config.APIJWTSecret()
			if secret == "" {
				return errors.New("API_JWT_SECRET is not set")
			}
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive, got %s", ttl)
			}
			token, err := auth.NewJWT(secret).Issue(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Token subject, e.g. the calling system (required)")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
