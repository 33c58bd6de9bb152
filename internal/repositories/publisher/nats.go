package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"jobly/internal/domain/entity"
	"jobly/internal/models/dto"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

const (
	StreamName    = "JOBS"
	subjectPrefix = "JOBS."
)

type NATSJobPublisher struct {
	js     jetstream.JetStream
	nc     *nats.Conn
	stream jetstream.Stream
	log    *zap.Logger
}

func NewNATSJobPublisher(ctx context.Context, log *zap.Logger, natsURL string) (*NATSJobPublisher, error) {
	maxRetries := 10
	retryDelay := 3 * time.Second
	var nc *nats.Conn
	var err error

	// Retry connection with exponential backoff
	for i := 0; i < maxRetries; i++ {
		opts := []nats.Option{
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2 * time.Second),
			nats.Timeout(10 * time.Second),
			nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
				if err != nil {
					log.Warn("NATS disconnected", zap.Error(err))
				}
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Info("NATS reconnected", zap.String("url", natsURL))
			}),
		}

		nc, err = nats.Connect(natsURL, opts...)
		if err == nil {
			break
		}

		log.Warn("Failed to connect to NATS, retrying...",
			zap.String("url", natsURL),
			zap.Error(err),
			zap.Int("attempt", i+1),
			zap.Duration("retry_delay", retryDelay))

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
			retryDelay = time.Duration(float64(retryDelay) * 1.5)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS after %d attempts: %w", maxRetries, err)
	}

	if !nc.IsConnected() {
		nc.Close()
		return nil, fmt.Errorf("NATS connection not established")
	}

	log.Info("Successfully connected to NATS", zap.String("url", natsURL))

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{subjectPrefix + ">"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", StreamName, err)
	}

	log.Info("NATS JetStream publisher initialized successfully", zap.String("stream", StreamName))

	return &NATSJobPublisher{
		js:     js,
		nc:     nc,
		stream: stream,
		log:    log,
	}, nil
}

func (p *NATSJobPublisher) Close() error {
	if p.nc != nil && !p.nc.IsClosed() {
		p.nc.Close()
	}
	return nil
}

func (p *NATSJobPublisher) Publish(ctx context.Context, event entity.JobEvent) error {
	if event.Job == nil {
		return errors.New("job event without job")
	}

	subject, err := SubjectFor(event.Action)
	if err != nil {
		return err
	}

	data, err := json.Marshal(dto.FromJobEvent(event))
	if err != nil {
		return fmt.Errorf("failed to marshal job event: %w", err)
	}

	p.log.Debug("Attempting to publish job event",
		zap.Int64("job_id", event.Job.ID),
		zap.String("subject", subject),
		zap.Int("data_size", len(data)))

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.js.Publish(publishCtx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish job event to NATS: %w", err)
	}

	p.log.Info("Published job event to NATS",
		zap.Int64("job_id", event.Job.ID),
		zap.String("subject", subject),
		zap.Uint64("stream_sequence", ack.Sequence))

	return nil
}

// SubjectFor maps an action to its subject, e.g. JOBS.created.
func SubjectFor(action entity.JobAction) (string, error) {
	switch action {
	case entity.JobCreated, entity.JobUpdated, entity.JobDeleted:
		return subjectPrefix + string(action), nil
	}
	return "", fmt.Errorf("unknown job action %q", action)
}
