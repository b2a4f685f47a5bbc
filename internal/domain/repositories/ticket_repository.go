package repositories

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// TicketRepository define a interface para persistência de tickets
type TicketRepository interface {
	Create(ctx context.Context, ticket *entities.Ticket) error
	FindByID(ctx context.Context, id string) (*entities.Ticket, error)
	Update(ctx context.Context, ticket *entities.Ticket) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters TicketFilters) ([]*entities.Ticket, error)
}

// TicketFilters contém filtros para listagem de tickets
type TicketFilters struct {
	Status  *entities.TicketStatus
	Deleted bool
	Scope   Scope
	Pagination
}
