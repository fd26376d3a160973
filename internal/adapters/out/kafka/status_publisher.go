// Package kafka publishes shipment status changes to a Kafka topic for
// downstream consumers (tracking pages, analytics). Publishing happens after
// the owning transaction commits; a broker outage is logged by the caller and
// never fails the business operation.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"

	"github.com/segmentio/kafka-go"
)

// statusChangedEvent is the wire payload for a status change.
type statusChangedEvent struct {
	ShipmentID string    `json:"shipment_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StatusPublisher writes status change events to a Kafka topic.
// The shipment id keys each message so all events for one shipment land on
// the same partition and stay ordered.
type StatusPublisher struct {
	writer *kafka.Writer
}

// NewStatusPublisher creates a publisher connected to the given broker and topic.
func NewStatusPublisher(brokerAddr, topic string) *StatusPublisher {
	return &StatusPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddr),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishStatusChanged sends one status change event.
func (p *StatusPublisher) PublishStatusChanged(ctx context.Context, shipmentID kernel.UUID, name status.Name) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if err := name.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(statusChangedEvent{
		ShipmentID: shipmentID.String(),
		Status:     name.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(shipmentID.String()),
		Value: payload,
	})
}

// Close shuts down the underlying writer.
func (p *StatusPublisher) Close() error {
	return p.writer.Close()
}
