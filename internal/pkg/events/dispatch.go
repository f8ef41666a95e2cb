package events

import (
	"context"

	"github.com/rs/zerolog"
)

// Emit publishes an event and logs instead of returning failures
func Emit(ctx context.Context, publisher Publisher, logger zerolog.Logger, routingKey string, payload interface{}) {
	if publisher == nil {
		return
	}
	// the request may finish before the broker answers
	if err := publisher.Publish(context.WithoutCancel(ctx), routingKey, payload); err != nil {
		logger.Warn().Err(err).Str("event", routingKey).Msg("Failed to publish event")
	}
}
