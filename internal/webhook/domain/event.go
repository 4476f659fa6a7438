package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Event is one inbound provider notification. Body is kept exactly as
// received; form and JSON deliveries are not parsed.
type Event struct {
	ID            snowflake.ID
	ReceivedAt    time.Time
	ContentType   string
	Body          []byte
	CorrelationID string
}

// Sink receives forwarded events.
type Sink interface {
	Name() string
	Publish(ctx context.Context, event Event) error
}

// Service accepts a delivery and hands it to the configured sink.
type Service interface {
	Forward(ctx context.Context, contentType string, body []byte) (Event, error)
}
