package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// EventPublisherNATS publishes domain events as JSON on core NATS subjects.
type EventPublisherNATS struct {
	Conn *nats.Conn
}

func NewEventPublisherNATS(conn *nats.Conn) *EventPublisherNATS {
	return &EventPublisherNATS{Conn: conn}
}

func (p *EventPublisherNATS) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	if err := p.Conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
