package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/IBM/sarama"
)

// HandlerFunc processes one decoded event. A returned error leaves the message
// unmarked so the group redelivers it.
type HandlerFunc func(ctx context.Context, evt AnalysisCompleted) error

// Consumer reads analysis events as a member of a consumer group
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandlerFunc
}

// NewConsumer joins groupID on brokers. Only events published after joining are
// delivered to a new group.
func NewConsumer(brokers []string, topic, groupID string, handler HandlerFunc) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to join consumer group %s: %w", groupID, err)
	}
	return &Consumer{group: group, topic: topic, handler: handler}, nil
}

// Run consumes until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	go func() {
		for err := range c.group.Errors() {
			log.Printf("❌ Kafka consumer error: %v", err)
		}
	}()

	h := &groupHandler{handler: c.handler}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.Printf("Error from Kafka consumer: %v", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Close leaves the group
func (c *Consumer) Close() error {
	log.Println("Closing Kafka consumer...")
	return c.group.Close()
}

type groupHandler struct {
	handler HandlerFunc
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if h.handle(session.Context(), msg.Value) {
				session.MarkMessage(msg, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle decodes and dispatches one payload and reports whether to mark it.
// Undecodable payloads are marked so they are skipped.
func (h *groupHandler) handle(ctx context.Context, payload []byte) bool {
	var evt AnalysisCompleted
	if err := json.Unmarshal(payload, &evt); err != nil {
		log.Printf("❌ Failed to decode analysis event: %v", err)
		return true
	}
	if err := h.handler(ctx, evt); err != nil {
		log.Printf("❌ Failed to handle analysis event %s: %v", evt.ID, err)
		return false
	}
	return true
}
