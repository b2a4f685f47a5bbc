package repositories

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// ProductRepository define a interface para persistência de produtos
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	// Delete remove o produto definitivamente
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters ProductFilters) ([]*entities.Product, error)
}

// ProductFilters contém filtros para listagem de produtos
type ProductFilters struct {
	Plan   *entities.Plan
	Search string // nome ou descrição
	Pagination
}
