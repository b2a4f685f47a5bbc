package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// FranchiseRepository implementa repositories.FranchiseRepository
type FranchiseRepository struct {
	db *gorm.DB
}

// NewFranchiseRepository cria um novo FranchiseRepository
func NewFranchiseRepository(db *gorm.DB) repositories.FranchiseRepository {
	return &FranchiseRepository{db: db}
}

func (r *FranchiseRepository) Create(ctx context.Context, franchise *entities.Franchise) error {
	model := toFranchiseModel(franchise)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	franchise.ID = model.ID
	franchise.CreatedAt = fromUnix(model.CreatedAt)
	franchise.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *FranchiseRepository) FindByID(ctx context.Context, id string) (*entities.Franchise, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *FranchiseRepository) FindByOwner(ctx context.Context, userID string) (*entities.Franchise, error) {
	return r.findOne(ctx, "user_id = ? AND deleted_at IS NULL", userID)
}

func (r *FranchiseRepository) findOne(ctx context.Context, where string, args ...interface{}) (*entities.Franchise, error) {
	var model FranchiseModel

	if err := getDB(ctx, r.db).Where(where, args...).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toFranchiseEntity(&model), nil
}

func (r *FranchiseRepository) Update(ctx context.Context, franchise *entities.Franchise) error {
	model := toFranchiseModel(franchise)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err)
	}

	franchise.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

// UpdateScore grava apenas a coluna score, sem sobrescrever o restante do registro
func (r *FranchiseRepository) UpdateScore(ctx context.Context, id string, score int) error {
	return getDB(ctx, r.db).Model(&FranchiseModel{}).
		Where("id = ?", id).
		Update("score", score).Error
}

func (r *FranchiseRepository) ReleaseOwner(ctx context.Context, userID string) error {
	return getDB(ctx, r.db).Model(&FranchiseModel{}).
		Where("user_id = ?", userID).
		Update("user_id", nil).Error
}

// SoftDelete encerra a franquia e libera o franqueado para outra unidade
func (r *FranchiseRepository) SoftDelete(ctx context.Context, id string) error {
	return getDB(ctx, r.db).Model(&FranchiseModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now().Unix(),
			"user_id":    nil,
		}).Error
}

func (r *FranchiseRepository) List(ctx context.Context, filters repositories.FranchiseFilters) ([]*entities.Franchise, error) {
	var models []*FranchiseModel

	query := getDB(ctx, r.db).Model(&FranchiseModel{})
	query = applyScope(query, filters.Scope, "id")
	query = applyDeleted(query, filters.Deleted)

	if filters.MinScore != nil {
		query = query.Where("score >= ?", *filters.MinScore)
	}
	if filters.MaxScore != nil {
		query = query.Where("score <= ?", *filters.MaxScore)
	}
	query = applySearch(query, filters.Search, "name", "address", "cnpj")
	query = applyPagination(query, filters.Pagination)

	if err := query.Order("score DESC, name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	franchises := make([]*entities.Franchise, len(models))
	for i, model := range models {
		franchises[i] = toFranchiseEntity(model)
	}
	return franchises, nil
}

func toFranchiseModel(f *entities.Franchise) *FranchiseModel {
	return &FranchiseModel{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		CNPJ:      f.CNPJ,
		Phone:     f.Phone,
		Score:     f.Score,
		UserID:    f.UserID,
		CreatedAt: toUnix(f.CreatedAt),
		UpdatedAt: toUnix(f.UpdatedAt),
		DeletedAt: toUnixPtr(f.DeletedAt),
	}
}

func toFranchiseEntity(m *FranchiseModel) *entities.Franchise {
	return &entities.Franchise{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		CNPJ:      m.CNPJ,
		Phone:     m.Phone,
		Score:     m.Score,
		UserID:    m.UserID,
		CreatedAt: fromUnix(m.CreatedAt),
		UpdatedAt: fromUnix(m.UpdatedAt),
		DeletedAt: fromUnixPtr(m.DeletedAt),
	}
}
