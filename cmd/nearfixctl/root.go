package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/config"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/events"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// operatorID is the actor id recorded for admin actions taken from the CLI
const operatorID = "nearfixctl"

type cli struct {
	configPath string
	logLevel   string
	cfg        *models.Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: logrus.New()}

	root := &cobra.Command{
		Use:           "nearfixctl",
		Short:         "Operator tooling for the nearfix marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(c.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level (%s): %w", c.logLevel, err)
			}
			c.log.SetLevel(level)
			c.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			c.cfg = config.InitConfig(c.configPath)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "config/marketplace.env", "env file with marketplace settings")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newMigrateCmd(c),
		newCategoryCmd(c),
		newHelperCmd(c),
		newTokenCmd(c),
		newEventsCmd(c),
	)

	return root
}

// openDB connects to the configured database and brings the schema up to date
func (c *cli) openDB(ctx context.Context) (*database.SQLClient, *sqlx.DB, error) {
	client, err := database.NewSQLClient(c.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	db := client.GetDB()
	if err := database.Migrate(ctx, db); err != nil {
		client.Close()
		return nil, nil, err
	}
	return client, db, nil
}

// openRedis returns nil when the cache is unreachable so writes still go through
func (c *cli) openRedis() *database.RedisClient {
	if c.cfg.Redis.Host == "" {
		return nil
	}
	client, err := database.NewRedisClient(c.cfg.Redis)
	if err != nil {
		c.log.WithError(err).Warn("redis unavailable, cached entries will expire on their own")
		return nil
	}
	return client
}

// openBus connects to the configured broker so CLI actions emit the same events as the API
func (c *cli) openBus() (*events.Bus, error) {
	sender, _, err := events.NewSender(c.cfg.Broker, operatorID)
	if err != nil {
		return nil, err
	}
	return events.NewBus(sender, nil), nil
}

func (c *cli) operator() models.Actor {
	return models.Actor{ID: operatorID, Role: models.RoleAdmin}
}
