package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// SaleRepository implementa repositories.SaleRepository
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository cria um novo SaleRepository
func NewSaleRepository(db *gorm.DB) repositories.SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	model := toSaleModel(sale)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	sale.ID = model.ID
	sale.CreatedAt = fromUnix(model.CreatedAt)
	sale.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*entities.Sale, error) {
	var model SaleModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toSaleEntity(&model), nil
}

func (r *SaleRepository) Update(ctx context.Context, sale *entities.Sale) error {
	model := toSaleModel(sale)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err)
	}

	sale.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *SaleRepository) SoftDelete(ctx context.Context, id string) error {
	return softDelete(getDB(ctx, r.db), &SaleModel{}, id)
}

func (r *SaleRepository) List(ctx context.Context, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	var models []*SaleModel

	query := getDB(ctx, r.db).Model(&SaleModel{})
	query = applyScope(query, filters.Scope, "franchise_id")
	query = applyDeleted(query, filters.Deleted)

	if filters.FranchiseID != "" {
		query = query.Where("franchise_id = ?", filters.FranchiseID)
	}
	if filters.CustomerID != "" {
		query = query.Where("customer_id = ?", filters.CustomerID)
	}
	if filters.ProductID != "" {
		query = query.Where("product_id = ?", filters.ProductID)
	}
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}
	query = applySearch(query, filters.Search, "description")
	query = applyPagination(query, filters.Pagination)

	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return toSaleEntities(models), nil
}

func (r *SaleRepository) ListActiveByFranchise(ctx context.Context, franchiseID string) ([]*entities.Sale, error) {
	var models []*SaleModel

	err := getDB(ctx, r.db).
		Where("franchise_id = ? AND deleted_at IS NULL", franchiseID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toSaleEntities(models), nil
}

func toSaleModel(s *entities.Sale) *SaleModel {
	return &SaleModel{
		ID:          s.ID,
		Description: s.Description,
		CustomerID:  s.CustomerID,
		FranchiseID: s.FranchiseID,
		ProductID:   s.ProductID,
		UserID:      s.UserID,
		CreatedAt:   toUnix(s.CreatedAt),
		UpdatedAt:   toUnix(s.UpdatedAt),
		DeletedAt:   toUnixPtr(s.DeletedAt),
	}
}

func toSaleEntities(models []*SaleModel) []*entities.Sale {
	sales := make([]*entities.Sale, len(models))
	for i, model := range models {
		sales[i] = toSaleEntity(model)
	}
	return sales
}

func toSaleEntity(m *SaleModel) *entities.Sale {
	return &entities.Sale{
		ID:          m.ID,
		Description: m.Description,
		CustomerID:  m.CustomerID,
		FranchiseID: m.FranchiseID,
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		CreatedAt:   fromUnix(m.CreatedAt),
		UpdatedAt:   fromUnix(m.UpdatedAt),
		DeletedAt:   fromUnixPtr(m.DeletedAt),
	}
}
