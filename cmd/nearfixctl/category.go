package main

import (
	"fmt"

	cataloggw "github.com/piresc/nearfix/services/catalog/gateway"
	catalogrepo "github.com/piresc/nearfix/services/catalog/repository"
	cataloguc "github.com/piresc/nearfix/services/catalog/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCategoryCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage service categories",
	}
	cmd.AddCommand(newCategoryAddCmd(c), newCategoryListCmd(c))
	return cmd
}

func newCategoryAddCmd(c *cli) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a service category",
		Args:  cobra.NoArgs,
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

			redisClient := c.openRedis()
			if redisClient != nil {
				defer redisClient.Close()
			}

			repo := catalogrepo.NewCatalogRepository(c.cfg, db, redisClient)
			uc := cataloguc.NewCatalogUC(repo, cataloggw.NewCatalogGW(bus))

			category, err := uc.CreateCategory(ctx, c.operator(), name, description)
			if err != nil {
				return fmt.Errorf("failed to add category %q: %w", name, err)
			}
			c.log.WithFields(logrus.Fields{"id": category.ID, "name": category.Name}).Info("category added")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "category name")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCategoryListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List service categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, db, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			categories, err := catalogrepo.NewCatalogRepository(c.cfg, db, nil).ListCategories(ctx)
			if err != nil {
				return err
			}
			for _, category := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", category.ID, category.Name, category.Description)
			}
			return nil
		},
	}
}
