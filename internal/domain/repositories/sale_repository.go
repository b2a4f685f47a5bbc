package repositories

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// SaleRepository define a interface para persistência de vendas
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	FindByID(ctx context.Context, id string) (*entities.Sale, error)
	Update(ctx context.Context, sale *entities.Sale) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters SaleFilters) ([]*entities.Sale, error)
	// ListActiveByFranchise retorna todas as vendas não deletadas da franquia, sem paginação
	ListActiveByFranchise(ctx context.Context, franchiseID string) ([]*entities.Sale, error)
}

// SaleFilters contém filtros para listagem de vendas
type SaleFilters struct {
	FranchiseID string
	CustomerID  string
	ProductID   string
	UserID      string
	Search      string // descrição
	Deleted     bool
	Scope       Scope
	Pagination
}
