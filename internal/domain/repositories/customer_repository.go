package repositories

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// CustomerRepository define a interface para persistência de clientes
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	FindByID(ctx context.Context, id string) (*entities.Customer, error)
	Update(ctx context.Context, customer *entities.Customer) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters CustomerFilters) ([]*entities.Customer, error)
}

// CustomerFilters contém filtros para listagem de clientes
type CustomerFilters struct {
	Search  string // nome, cnpj ou endereço
	Deleted bool
	Scope   Scope
	Pagination
}
