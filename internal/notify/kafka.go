package notify

import (
	"context"
	"encoding/json"
	"time"

	"auction-engine/internal/livestream"
	"auction-engine/utils"

	"github.com/segmentio/kafka-go"
)

// DefaultEventTopic is the bus topic carrying auction lifecycle events.
const DefaultEventTopic = "auction.events"

// KafkaPublisher mirrors live-stream events onto a Kafka topic for
// downstream consumers. Messages are keyed by auction id so one auction's
// events land on one partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher against the given broker and topic.
func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Deliver publishes one event; failures are logged and swallowed.
func (p *KafkaPublisher) Deliver(ev livestream.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		utils.Error("failed to marshal auction event", map[string]any{
			"event": string(ev.Kind), "auction_id": ev.AuctionID, "error": err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.AuctionID),
		Value: payload,
	})
	if err != nil {
		utils.Error("failed to publish auction event", map[string]any{
			"event": string(ev.Kind), "auction_id": ev.AuctionID, "error": err.Error(),
		})
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
