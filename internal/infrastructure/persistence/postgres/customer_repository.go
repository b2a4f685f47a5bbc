package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// CustomerRepository implementa repositories.CustomerRepository
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository cria um novo CustomerRepository
func NewCustomerRepository(db *gorm.DB) repositories.CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	model := toCustomerModel(customer)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	customer.ID = model.ID
	customer.CreatedAt = fromUnix(model.CreatedAt)
	customer.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entities.Customer, error) {
	var model CustomerModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toCustomerEntity(&model), nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	model := toCustomerModel(customer)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err)
	}

	customer.UpdatedAt = fromUnix(model.UpdatedAt)
	return nil
}

func (r *CustomerRepository) SoftDelete(ctx context.Context, id string) error {
	return softDelete(getDB(ctx, r.db), &CustomerModel{}, id)
}

func (r *CustomerRepository) List(ctx context.Context, filters repositories.CustomerFilters) ([]*entities.Customer, error) {
	var models []*CustomerModel

	// Escopo primeiro, busca depois: o OR fica restrito aos campos pesquisáveis
	query := getDB(ctx, r.db).Model(&CustomerModel{})
	query = applyScope(query, filters.Scope, "franchise_id")
	query = applyDeleted(query, filters.Deleted)
	query = applySearch(query, filters.Search, "name", "cnpj", "address")
	query = applyPagination(query, filters.Pagination)

	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	customers := make([]*entities.Customer, len(models))
	for i, model := range models {
		customers[i] = toCustomerEntity(model)
	}
	return customers, nil
}

func toCustomerModel(c *entities.Customer) *CustomerModel {
	return &CustomerModel{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		CNPJ:        c.CNPJ,
		Phone:       c.Phone,
		FranchiseID: c.FranchiseID,
		CreatedAt:   toUnix(c.CreatedAt),
		UpdatedAt:   toUnix(c.UpdatedAt),
		DeletedAt:   toUnixPtr(c.DeletedAt),
	}
}

func toCustomerEntity(m *CustomerModel) *entities.Customer {
	return &entities.Customer{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		CNPJ:        m.CNPJ,
		Phone:       m.Phone,
		FranchiseID: m.FranchiseID,
		CreatedAt:   fromUnix(m.CreatedAt),
		UpdatedAt:   fromUnix(m.UpdatedAt),
		DeletedAt:   fromUnixPtr(m.DeletedAt),
	}
}
