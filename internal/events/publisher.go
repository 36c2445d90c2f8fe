package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const (
	streamName     = "CONFIG_EVENTS"
	subjectPrefix  = "config."
	publishTimeout = 5 * time.Second
)

// Event is the envelope published for every configuration change.
type Event struct {
	ID         string          `json:"id"`
	Subject    string          `json:"subject"`
	Entity     string          `json:"entity"`
	Action     string          `json:"action"`
	EntityID   uint            `json:"entityId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Publisher emits configuration change events onto JetStream under
// config.<entity>.<action>. A nil Publisher is safe to call; deployments
// without NATS simply run without events.
type Publisher struct {
	js     nats.JetStreamContext
	conn   *nats.Conn
	logger *logrus.Entry
}

// NewPublisher connects to NATS and ensures the config events stream
// exists. The caller owns deciding whether a connection failure is fatal.
func NewPublisher(natsURL string, logger *logrus.Logger) (*Publisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name("payment-config-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, err
	}

	entry := logger.WithField("component", "events.publisher")

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ">"},
		Storage:  nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		entry.WithError(err).Warn("failed to ensure config events stream")
	}

	return &Publisher{js: js, conn: conn, logger: entry}, nil
}

// Publish emits one change event. Failures are logged, never propagated;
// the database write already succeeded and must not be reported as failed.
func (p *Publisher) Publish(ctx context.Context, entity, action string, entityID uint, payload interface{}) {
	if p == nil || p.js == nil {
		return
	}

	subject := subjectPrefix + entity + "." + action
	event := Event{
		ID:         uuid.New().String(),
		Subject:    subject,
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			p.logger.WithError(err).WithField("subject", subject).Warn("event payload not serializable")
		} else {
			event.Payload = raw
		}
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("event not serializable")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if _, err := p.js.Publish(subject, data, nats.Context(ctx)); err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("event publish failed")
	}
}

// Close drains the underlying connection.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.logger.WithError(err).Warn("nats drain failed")
	}
}
