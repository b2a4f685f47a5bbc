package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// TicketRepository implementa repositories.TicketRepository
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository cria um novo TicketRepository
func NewTicketRepository(db *gorm.DB) repositories.TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	model := toTicketModel(ticket)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	ticket.ID = model.ID
	ticket.CreatedAt = fromUnix(model.CreatedAt)
	ticket.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*entities.Ticket, error) {
	var model TicketModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toTicketEntity(&model), nil
}

func (r *TicketRepository) Update(ctx context.Context, ticket *entities.Ticket) error {
	model := toTicketModel(ticket)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err)
	}

	ticket.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *TicketRepository) SoftDelete(ctx context.Context, id string) error {
	return softDelete(getDB(ctx, r.db), &TicketModel{}, id)
}

func (r *TicketRepository) List(ctx context.Context, filters repositories.TicketFilters) ([]*entities.Ticket, error) {
	var models []*TicketModel

	query := getDB(ctx, r.db).Model(&TicketModel{})
	query = applyScope(query, filters.Scope, "franchise_id")
	query = applyDeleted(query, filters.Deleted)

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	query = applyPagination(query, filters.Pagination)

	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	tickets := make([]*entities.Ticket, len(models))
	for i, model := range models {
		tickets[i] = toTicketEntity(model)
	}
	return tickets, nil
}

func toTicketModel(t *entities.Ticket) *TicketModel {
	return &TicketModel{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		FranchiseID: t.FranchiseID,
		UserID:      t.UserID,
		CreatedAt:   toUnix(t.CreatedAt),
		UpdatedAt:   toUnix(t.UpdatedAt),
		DeletedAt:   toUnixPtr(t.DeletedAt),
	}
}

func toTicketEntity(m *TicketModel) *entities.Ticket {
	return &entities.Ticket{
		ID:          m.ID,
		Description: m.Description,
		Status:      entities.TicketStatus(m.Status),
		FranchiseID: m.FranchiseID,
		UserID:      m.UserID,
		CreatedAt:   fromUnix(m.CreatedAt),
		UpdatedAt:   fromUnix(m.UpdatedAt),
		DeletedAt:   fromUnixPtr(m.DeletedAt),
	}
}
