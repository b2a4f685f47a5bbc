package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	product.ID = model.ID
	product.CreatedAt = fromUnix(model.CreatedAt)
	product.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	var model ProductModel

	if err := getDB(ctx, r.db).Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toProductEntity(&model), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err)
	}

	product.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

// Delete remove o registro; vendas que referenciam o produto impedem a remoção
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return translateError(getDB(ctx, r.db).Where("id = ?", id).Delete(&ProductModel{}).Error)
}

func (r *ProductRepository) List(ctx context.Context, filters repositories.ProductFilters) ([]*entities.Product, error) {
	var models []*ProductModel

	query := getDB(ctx, r.db).Model(&ProductModel{}).Where("deleted_at IS NULL")

	if filters.Plan != nil {
		query = query.Where("plan = ?", string(*filters.Plan))
	}
	query = applySearch(query, filters.Search, "name", "description")
	query = applyPagination(query, filters.Pagination)

	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, len(models))
	for i, model := range models {
		products[i] = toProductEntity(model)
	}
	return products, nil
}

func toProductModel(p *entities.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Plan:        string(p.Plan),
		Score:       p.Score,
		CreatedAt:   toUnix(p.CreatedAt),
		UpdatedAt:   toUnix(p.UpdatedAt),
		DeletedAt:   toUnixPtr(p.DeletedAt),
	}
}

func toProductEntity(m *ProductModel) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Plan:        entities.Plan(m.Plan),
		Score:       m.Score,
		CreatedAt:   fromUnix(m.CreatedAt),
		UpdatedAt:   fromUnix(m.UpdatedAt),
		DeletedAt:   fromUnixPtr(m.DeletedAt),
	}
}
