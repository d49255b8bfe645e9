package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nearfix/internal/pkg/kafka"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/pkg/nats"
	"github.com/piresc/nearfix/internal/pkg/nsq"
	"github.com/piresc/nearfix/internal/pkg/retry"
)

// Broker types accepted by BROKER_TYPE
const (
	BrokerNone  = "none"
	BrokerNATS  = "nats"
	BrokerNSQ   = "nsq"
	BrokerKafka = "kafka"
)

// Sender delivers an encoded event to a broker
type Sender interface {
	Send(eventType, key string, data []byte) error
	Close() error
}

// Publisher publishes domain events
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// Bus wraps payloads in a models.Event envelope and hands them to a Sender
type Bus struct {
	sender  Sender
	retrier *retry.Retrier
}

// NewBus creates a bus over sender. A nil retrier sends once.
func NewBus(sender Sender, retrier *retry.Retrier) *Bus {
	return &Bus{sender: sender, retrier: retrier}
}

// Publish encodes payload and sends it
func (b *Bus) Publish(ctx context.Context, eventType string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	event := models.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: models.Now(),
		Data:      data,
	}
	encoded, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	send := func(context.Context) error {
		return b.sender.Send(eventType, event.ID, encoded)
	}
	if b.retrier != nil {
		err = b.retrier.Execute(ctx, send)
	} else {
		err = send(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	logger.Debug("Event published",
		logger.String("event_type", eventType),
		logger.String("event_id", event.ID))
	return nil
}

// Close closes the underlying sender
func (b *Bus) Close() error {
	return b.sender.Close()
}

// NoopSender drops every event
type NoopSender struct{}

func (NoopSender) Send(string, string, []byte) error { return nil }
func (NoopSender) Close() error                      { return nil }

// NewSender builds the Sender selected by cfg.Type. The returned NATS client is
// non-nil only for the nats broker so callers can register it for health checks.
func NewSender(cfg models.BrokerConfig, serviceName string) (Sender, *nats.Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "", BrokerNone:
		return NoopSender{}, nil, nil
	case BrokerNATS:
		client, err := nats.NewClient(cfg.NATSURL, serviceName)
		if err != nil {
			return nil, nil, err
		}
		return client, client, nil
	case BrokerNSQ:
		producer, err := nsq.NewProducer(cfg.NSQAddr)
		if err != nil {
			return nil, nil, err
		}
		return producer, nil, nil
	case BrokerKafka:
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return producer, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown broker type %q", cfg.Type)
	}
}
