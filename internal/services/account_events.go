package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/vibeguard/vibeguard/internal/logger"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AccountEvent is the payload published on account lifecycle changes.
type AccountEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Type       string    `json:"type"` // user_registered, user_verified, user_suspended, user_unsuspended
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AccountEventPublisher publishes account events to Kafka. Publishing is
// best-effort: a broker failure is logged and never fails the surrounding
// handler.
type AccountEventPublisher struct {
	writer KafkaWriter
}

// NewAccountEventPublisher creates a publisher; writer may be nil, in
// which case events are dropped with a warning.
func NewAccountEventPublisher(writer KafkaWriter) *AccountEventPublisher {
	return &AccountEventPublisher{writer: writer}
}

// Publish emits one account event.
func (p *AccountEventPublisher) Publish(ctx context.Context, eventType string, userID uuid.UUID, email string) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := AccountEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		UserID:     userID,
		Email:      email,
		OccurredAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal account event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(userID.String()),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish account event", "type", eventType, "err", err)
		return
	}

	logger.Log.Infow("account event published", "type", eventType, "user_id", userID)
}
