package dto

import (
	"strings"
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// CreateTicketRequest abre um chamado para a franquia do franqueado
type CreateTicketRequest struct {
	Description string `json:"description" binding:"required,min=3,max=255"`
}

// UpdateTicketStatusRequest move o chamado de status
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TicketStatus normaliza o status informado
func (r UpdateTicketStatusRequest) TicketStatus() entities.TicketStatus {
	return entities.TicketStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// ListTicketsQuery são os filtros de GET /ticket
type ListTicketsQuery struct {
	Status string `form:"status"`
	DeletedQuery
	PageQuery
}

func (q ListTicketsQuery) ToFilters() repositories.TicketFilters {
	filters := repositories.TicketFilters{
		Deleted:    q.deleted(),
		Pagination: q.pagination(),
	}
	if q.Status != "" {
		status := entities.TicketStatus(strings.ToUpper(q.Status))
		filters.Status = &status
	}
	return filters
}

// TicketResponse representa a resposta de um chamado
type TicketResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	FranchiseID string     `json:"franchiseId"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

func ToTicketResponse(t *entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		FranchiseID: t.FranchiseID,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   t.DeletedAt,
	}
}

func ToTicketResponses(tickets []*entities.Ticket) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = ToTicketResponse(t)
	}
	return responses
}

// TicketEventMessage é a mensagem enviada aos assinantes do feed de tickets
type TicketEventMessage struct {
	Event      string         `json:"event"`
	Ticket     TicketResponse `json:"ticket"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func ToTicketEventMessage(event ports.TicketEvent) TicketEventMessage {
	return TicketEventMessage{
		Event:      string(event.Type),
		Ticket:     ToTicketResponse(event.Ticket),
		OccurredAt: event.OccurredAt,
	}
}
