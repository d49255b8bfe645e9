package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	natsgo "github.com/nats-io/nats.go"
	"github.com/piresc/nearfix/internal/pkg/events"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/pkg/nats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEventsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect marketplace events",
	}
	cmd.AddCommand(newEventsWatchCmd(c))
	return cmd
}

func newEventsWatchCmd(c *cli) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print events published on NATS until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.EqualFold(c.cfg.Broker.Type, events.BrokerNATS) {
				return fmt.Errorf("events watch needs BROKER_TYPE=%s, got %q", events.BrokerNATS, c.cfg.Broker.Type)
			}

			client, err := nats.NewClient(c.cfg.Broker.NATSURL, operatorID+"-watch")
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			sub, err := client.Subscribe(subject, func(msg *natsgo.Msg) {
				var event models.Event
				if err := json.Unmarshal(msg.Data, &event); err != nil {
					c.log.WithError(err).WithField("subject", msg.Subject).Warn("skipping undecodable event")
					return
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
					event.Timestamp.Format("2006-01-02T15:04:05Z07:00"), event.Type, event.ID, string(event.Data))
			})
			if err != nil {
				return err
			}
			defer sub.Unsubscribe()

			c.log.WithFields(logrus.Fields{"url": c.cfg.Broker.NATSURL, "subject": subject}).Info("watching events")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", ">", "NATS subject to watch, wildcards allowed")
	return cmd
}
