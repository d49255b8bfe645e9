package main

import (
	"fmt"
	"time"

	"github.com/piresc/nearfix/internal/pkg/jwt"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTokenCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with API bearer tokens",
	}
	cmd.AddCommand(newTokenIssueCmd(c))
	return cmd
}

func newTokenIssueCmd(c *cli) *cobra.Command {
	var subject, role string
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed token for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor := models.Actor{ID: subject, Role: models.Role(role)}
			if !actor.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}

			token, expiresAt, err := jwt.GenerateToken(actor, c.cfg.JWT)
			if err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{
				"subject":    actor.ID,
				"role":       actor.Role,
				"expires_at": time.Unix(expiresAt, 0).UTC().Format(time.RFC3339),
			}).Debug("token issued")
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "account id to embed in the token")
	cmd.Flags().StringVar(&role, "role", string(models.RoleUser), "account role (user, helper, admin)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
