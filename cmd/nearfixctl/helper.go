package main

import (
	"fmt"
	"strconv"

	"github.com/piresc/nearfix/internal/pkg/models"
	catalogrepo "github.com/piresc/nearfix/services/catalog/repository"
	helpergw "github.com/piresc/nearfix/services/helpers/gateway"
	helperrepo "github.com/piresc/nearfix/services/helpers/repository"
	helperuc "github.com/piresc/nearfix/services/helpers/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newHelperCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helper",
		Short: "Manage helper accounts",
	}
	cmd.AddCommand(newHelperApproveCmd(c), newHelperListCmd(c))
	return cmd
}

func newHelperApproveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "approve [helper-id]",
		Short: "Approve a helper so they can be matched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, db, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			bus, err := c.openBus()
			if err != nil {
				return err
			}
			defer bus.Close()

			uc := helperuc.NewHelperUC(
				helperrepo.NewHelperRepository(c.cfg, db),
				catalogrepo.NewCatalogRepository(c.cfg, db, nil),
				helpergw.NewHelperGW(bus),
			)
			helper, err := uc.ApproveHelper(ctx, c.operator(), args[0])
			if err != nil {
				return fmt.Errorf("failed to approve helper %s: %w", args[0], err)
			}
			c.log.WithFields(logrus.Fields{
				"id":       helper.ID,
				"name":     helper.FullName,
				"category": helper.CategoryID,
			}).Info("helper approved")
			return nil
		},
	}
}

func newHelperListCmd(c *cli) *cobra.Command {
	var approved string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List helpers, optionally filtered by approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter models.HelperFilter
			if approved != "" {
				v, err := strconv.ParseBool(approved)
				if err != nil {
					return fmt.Errorf("invalid --approved value %q: %w", approved, err)
				}
				filter.Approved = &v
			}

			ctx := cmd.Context()
			client, db, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			helpers, err := helperrepo.NewHelperRepository(c.cfg, db).ListHelpers(ctx, filter)
			if err != nil {
				return err
			}
			for _, h := range helpers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tapproved=%t\tavailable=%t\n",
					h.ID, h.FullName, h.CategoryID, h.Approved, h.Available)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&approved, "approved", "", "only list helpers with this approval state (true or false)")
	return cmd
}
