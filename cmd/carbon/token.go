package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"carbon-edu/internal/service"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Tokens de acceso para /insights/ai",
	}

	var (
		subject string
		ttl     time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Emite un token firmado con AUTH_TOKEN_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = time.Duration(cfg.AuthTokenTTLMin) * time.Minute
			}
			tokens := service.NewAccessTokenService(cfg.AuthTokenSecret, ttl)
			if !tokens.Enabled() {
				return fmt.Errorf("AUTH_TOKEN_SECRET is not set")
			}
			token, expiresAt, err := tokens.Issue(subject)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	issue.Flags().StringVar(&subject, "subject", "", "identificador del cliente")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "vigencia (default: AUTH_TOKEN_TTL_MINUTES)")
	_ = issue.MarkFlagRequired("subject")

	cmd.AddCommand(issue)
	return cmd
}
