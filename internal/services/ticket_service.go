package services

import (
	"context"
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// TicketService gerencia os chamados abertos pelos franqueados
type TicketService struct {
	ticketRepo    repositories.TicketRepository
	franchiseRepo repositories.FranchiseRepository
	scopes        *ScopeResolver
	publishers    []ports.TicketPublisher
	logger        ports.Logger
}

// NewTicketService cria um novo TicketService. Cada publisher recebe os
// eventos de criação, atualização e remoção.
func NewTicketService(
	ticketRepo repositories.TicketRepository,
	franchiseRepo repositories.FranchiseRepository,
	scopes *ScopeResolver,
	logger ports.Logger,
	publishers ...ports.TicketPublisher,
) *TicketService {
	return &TicketService{
		ticketRepo:    ticketRepo,
		franchiseRepo: franchiseRepo,
		scopes:        scopes,
		publishers:    publishers,
		logger:        logger,
	}
}

// CreateTicket abre um chamado para a franquia do franqueado
func (s *TicketService) CreateTicket(ctx context.Context, caller *entities.User, description string) (*entities.Ticket, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleFranchisee); err != nil {
		return nil, err
	}

	franchise, err := s.franchiseRepo.FindByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, errors.ErrFranchiseNotFound
	}

	ticket := &entities.Ticket{
		Description: description,
		Status:      entities.TicketOpen,
		FranchiseID: franchise.ID,
		UserID:      caller.ID,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info("ticket created", "ticket_id", ticket.ID, "franchise_id", ticket.FranchiseID)
	s.publish(ctx, ports.TicketCreated, ticket)
	return ticket, nil
}

// ListTickets lista os chamados do escopo do chamador
func (s *TicketService) ListTickets(ctx context.Context, caller *entities.User, filters repositories.TicketFilters) ([]*entities.Ticket, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, invalidStatus()
	}

	scope, err := s.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	filters.Scope = scope
	return s.ticketRepo.List(ctx, filters)
}

// GetTicket busca um chamado visível ao chamador
func (s *TicketService) GetTicket(ctx context.Context, caller *entities.User, id string) (*entities.Ticket, error) {
	ticket, err := s.findTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.scopes.Authorize(ctx, caller, ticket.FranchiseID); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) findTicket(ctx context.Context, id string) (*entities.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, errors.ErrTicketNotFound
	}
	return ticket, nil
}

// UpdateTicketStatus move o chamado entre OPEN, IN_PROGRESS e CLOSED
func (s *TicketService) UpdateTicketStatus(ctx context.Context, caller *entities.User, id string, status entities.TicketStatus) (*entities.Ticket, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, invalidStatus()
	}

	ticket, err := s.findTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.Status = status
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info("ticket status updated", "ticket_id", ticket.ID, "status", status, "updated_by", caller.ID)
	s.publish(ctx, ports.TicketUpdated, ticket)
	return ticket, nil
}

// DeleteTicket faz soft delete do chamado
func (s *TicketService) DeleteTicket(ctx context.Context, caller *entities.User, id string) error {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return err
	}

	ticket, err := s.findTicket(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ticketRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("ticket deleted", "ticket_id", id, "deleted_by", caller.ID)
	s.publish(ctx, ports.TicketDeleted, ticket)
	return nil
}

// publish entrega o evento a todos os publishers; falhas são apenas logadas,
// a mudança já foi persistida.
func (s *TicketService) publish(ctx context.Context, eventType ports.TicketEventType, ticket *entities.Ticket) {
	event := ports.TicketEvent{
		Type:       eventType,
		Ticket:     ticket,
		OccurredAt: time.Now().UTC(),
	}
	for _, publisher := range s.publishers {
		if err := publisher.PublishTicket(ctx, event); err != nil {
			s.logger.Error("failed to publish ticket event",
				"ticket_id", ticket.ID,
				"event", eventType,
				"error", err,
			)
		}
	}
}

func invalidStatus() error {
	return errors.ErrInvalidStatus.With(map[string]interface{}{
		"Statuses": "OPEN, IN_PROGRESS, CLOSED",
	})
}
