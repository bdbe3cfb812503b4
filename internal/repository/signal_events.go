package repository

import (
	"context"

	"YieldPulse/internal/domain/models"
	"YieldPulse/internal/domain/repository"
	pkgkafka "YieldPulse/pkg/kafka"
)

// SignalEvents implements Publisher on Kafka. Reports are keyed by token
// so consumers see per-token ordering.
type SignalEvents struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewSignalEvents creates the Kafka-backed signal publisher.
func NewSignalEvents(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &SignalEvents{producer: producer, topic: topic}
}

func (p *SignalEvents) Publish(ctx context.Context, report *models.SignalReport) error {
	return p.producer.Publish(ctx, p.topic, []byte(report.Token), report)
}

func (p *SignalEvents) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
