package events

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobhub/internal/errors"
	"jobhub/internal/model"
)

type fakeConn struct {
	subject string
	data    []byte
	err     error
	closed  bool
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	c.subject, c.data = subject, data
	return c.err
}

func (c *fakeConn) Close() { c.closed = true }

func TestJobSourceSubmitted(t *testing.T) {
	fc := &fakeConn{}
	p := &natsPublisher{conn: fc, logger: zap.NewNop()}
	email := "me@x.com"
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	err := p.JobSourceSubmitted(context.Background(), &model.JobSource{
		ID: 9, Name: "Naukrigulf", URL: "https://www.naukrigulf.com", Category: "Job Board",
		SubmitterEmail: &email, CreatedAt: created,
	})
	require.NoError(t, err)
	assert.Equal(t, JobSourceSubmittedSubject, fc.subject)

	var got JobSourceSubmittedEvent
	require.NoError(t, json.Unmarshal(fc.data, &got))
	assert.Equal(t, uint(9), got.ID)
	assert.Equal(t, "Naukrigulf", got.Name)
	assert.Equal(t, &email, got.SubmitterEmail)
	assert.True(t, created.Equal(got.SubmittedAt))

	p.Close()
	assert.True(t, fc.closed)
}

func TestJobSourceSubmitted_PublishError(t *testing.T) {
	p := &natsPublisher{conn: &fakeConn{err: stderrors.New("nats: connection closed")}, logger: zap.NewNop()}

	err := p.JobSourceSubmitted(context.Background(), &model.JobSource{ID: 1})
	require.Error(t, err)
	assert.Equal(t, errors.TypeInternal, errors.TypeOf(err))
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()
	assert.NoError(t, p.JobSourceSubmitted(context.Background(), &model.JobSource{}))
	p.Close()
}
