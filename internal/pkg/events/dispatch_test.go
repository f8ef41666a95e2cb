package events

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	keys []string
	err  error
	ctx  context.Context
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, _ interface{}) error {
	p.ctx = ctx
	p.keys = append(p.keys, routingKey)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestEmit_PublishesWithDetachedContext(t *testing.T) {
	publisher := &recordingPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Emit(ctx, publisher, zerolog.Nop(), ApplicationSubmitted, ApplicationSubmittedEvent{ApplicationID: "a1"})

	assert.Equal(t, []string{ApplicationSubmitted}, publisher.keys)
	assert.NoError(t, publisher.ctx.Err())
}

func TestEmit_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	publisher := &recordingPublisher{err: errors.New("channel closed")}

	Emit(context.Background(), publisher, zerolog.New(&buf), JobStatusChanged, JobStatusChangedEvent{JobID: "j1"})

	assert.Contains(t, buf.String(), "channel closed")
	assert.Contains(t, buf.String(), JobStatusChanged)
}

func TestEmit_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, zerolog.Nop(), ProfileUpdated, ProfileUpdatedEvent{})
	})
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), ProfileUpdated, nil))
}
