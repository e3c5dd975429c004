// Package events publishes domain events to NATS.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"jobhub/internal/errors"
	"jobhub/internal/model"
)

const (
	// JobSourceSubmittedSubject carries new job sources awaiting moderation.
	JobSourceSubmittedSubject = "jobsources.submitted"
	connectTimeout            = 10 * time.Second
)

// JobSourceSubmittedEvent is the payload of JobSourceSubmittedSubject.
type JobSourceSubmittedEvent struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	Category       string    `json:"category"`
	SubmitterEmail *string   `json:"submitterEmail,omitempty"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// Publisher emits domain events.
type Publisher interface {
	JobSourceSubmitted(ctx context.Context, source *model.JobSource) error
	Close()
}

type conn interface {
	Publish(subject string, data []byte) error
	Close()
}

type natsPublisher struct {
	conn   conn
	logger *zap.Logger
}

// NewPublisher connects to NATS at url.
func NewPublisher(url string, logger *zap.Logger) (Publisher, error) {
	opts := []nats.Option{
		nats.Name("jobhub"),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}
	return &natsPublisher{conn: nc, logger: logger}, nil
}

func (p *natsPublisher) JobSourceSubmitted(_ context.Context, source *model.JobSource) error {
	event := JobSourceSubmittedEvent{
		ID:             source.ID,
		Name:           source.Name,
		URL:            source.URL,
		Category:       source.Category,
		SubmitterEmail: source.SubmitterEmail,
		SubmittedAt:    source.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Internal("marshaling event", err)
	}

	if err := p.conn.Publish(JobSourceSubmittedSubject, data); err != nil {
		p.logger.Error("failed to publish job source",
			zap.Uint("id", event.ID),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published job source",
		zap.Uint("id", event.ID),
		zap.String("subject", JobSourceSubmittedSubject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) JobSourceSubmitted(context.Context, *model.JobSource) error { return nil }
func (nopPublisher) Close()                                                     {}
