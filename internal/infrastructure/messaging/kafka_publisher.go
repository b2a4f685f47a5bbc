package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
)

// messageWriter é o subconjunto de *kafka.Writer usado pelo publisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaTicketPublisher replica eventos de ticket em um tópico Kafka.
// A chave da mensagem é o id da franquia, mantendo a ordem por franquia.
type KafkaTicketPublisher struct {
	writer messageWriter
}

// NewKafkaTicketPublisher cria um writer assíncrono para os brokers e tópico
// informados. Falhas de entrega são reportadas no log.
func NewKafkaTicketPublisher(brokers []string, topic string, logger ports.Logger) *KafkaTicketPublisher {
	return &KafkaTicketPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Error("failed to deliver ticket events", "count", len(messages), "error", err)
				}
			},
		},
	}
}

var _ ports.TicketPublisher = (*KafkaTicketPublisher)(nil)

type ticketMessage struct {
	Event       string    `json:"event"`
	TicketID    string    `json:"ticketId"`
	FranchiseID string    `json:"franchiseId"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (p *KafkaTicketPublisher) PublishTicket(ctx context.Context, event ports.TicketEvent) error {
	if event.Ticket == nil {
		return fmt.Errorf("kafka: ticket event without ticket")
	}

	value, err := json.Marshal(ticketMessage{
		Event:       string(event.Type),
		TicketID:    event.Ticket.ID,
		FranchiseID: event.Ticket.FranchiseID,
		UserID:      event.Ticket.UserID,
		Status:      string(event.Ticket.Status),
		Description: event.Ticket.Description,
		OccurredAt:  event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("kafka: marshal ticket event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Ticket.FranchiseID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write ticket event: %w", err)
	}
	return nil
}

// Close libera o writer
func (p *KafkaTicketPublisher) Close() error {
	return p.writer.Close()
}
