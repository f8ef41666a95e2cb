// Package events publishes domain events for downstream consumers such as
// notification workers. Publishing is best effort and never fails a request.
package events

import (
	"context"
	"time"
)

// Routing keys
const (
	ApplicationSubmitted = "application.submitted"
	JobStatusChanged     = "job.status_changed"
	ProfileUpdated       = "profile.updated"
)

// Envelope wraps every payload on the wire
type Envelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

// Publisher sends events to a broker
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

// NoopPublisher drops every event
type NoopPublisher struct{}

// Publish implements Publisher
func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// Close implements Publisher
func (NoopPublisher) Close() error { return nil }

// ApplicationSubmittedEvent is published after an application is stored
type ApplicationSubmittedEvent struct {
	ApplicationID string `json:"applicationId"`
	UserID        string `json:"userId"`
	JobID         string `json:"jobId"`
	CompanyName   string `json:"companyName"`
	Email         string `json:"email"`
}

// JobStatusChangedEvent is published after moderation
type JobStatusChangedEvent struct {
	JobID       string `json:"jobId"`
	CompanyName string `json:"companyName"`
	Status      string `json:"status"`
	ChangedBy   string `json:"changedBy"`
}

// ProfileUpdatedEvent is published after a profile write commits
type ProfileUpdatedEvent struct {
	UserID string   `json:"userId"`
	Mode   string   `json:"mode"`
	Fields []string `json:"fields"`
}
