package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// Stream settings of the outbound messages.
const (
	StreamName    = "CREDIT_MESSAGES"
	SubjectPrefix = "credit.messages."
)

// Publisher is the part of jetstream.JetStream NATSPublisher needs.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// StreamCreator is the part of jetstream.JetStream EnsureStream needs.
type StreamCreator interface {
	CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
}

// NATSPublisher publishes messages to JetStream for the executors of the collaborators.
type NATSPublisher struct {
	js Publisher
}

// NewNATSPublisher returns a NATSPublisher.
func NewNATSPublisher(js Publisher) *NATSPublisher {
	return &NATSPublisher{js: js}
}

// Subject returns the subject messages of kind are published to.
func Subject(kind domain.MessageKind) string {
	return SubjectPrefix + string(kind)
}

// Dispatch publishes msgs in order. The message id deduplicates redeliveries.
func (p *NATSPublisher) Dispatch(ctx context.Context, msgs []domain.Message) error {
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal message %s: %w", m.ID, err)
		}

		if _, err := p.js.Publish(ctx, Subject(m.Kind), data, jetstream.WithMsgID(m.ID)); err != nil {
			return fmt.Errorf("publish message %s: %w", m.ID, err)
		}
	}

	return nil
}

// EnsureStream creates the outbound messages stream.
func EnsureStream(ctx context.Context, js StreamCreator) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       StreamName,
		Subjects:   []string{SubjectPrefix + ">"},
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     72 * time.Hour,
		Duplicates: 10 * time.Minute,
		Replicas:   1,
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", StreamName, err)
	}

	return nil
}

// ConnectNATS establishes a NATS connection and returns a JetStream context.
func ConnectNATS(url string, logger zerolog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.Name("credit-manager"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info().Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}

	return nc, js, nil
}
