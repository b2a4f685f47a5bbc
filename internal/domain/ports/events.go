package ports

import (
	"context"
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// TicketEventType identifica o que aconteceu com o ticket
type TicketEventType string

const (
	TicketCreated TicketEventType = "ticket.created"
	TicketUpdated TicketEventType = "ticket.updated"
	TicketDeleted TicketEventType = "ticket.deleted"
)

// TicketEvent é publicado após cada mudança de ticket persistida
type TicketEvent struct {
	Type       TicketEventType
	Ticket     *entities.Ticket
	OccurredAt time.Time
}

// TicketPublisher entrega eventos de ticket a assinantes (websocket, kafka)
type TicketPublisher interface {
	PublishTicket(ctx context.Context, event TicketEvent) error
}
