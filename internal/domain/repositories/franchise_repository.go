package repositories

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// FranchiseRepository define a interface para persistência de franquias
type FranchiseRepository interface {
	Create(ctx context.Context, franchise *entities.Franchise) error
	FindByID(ctx context.Context, id string) (*entities.Franchise, error)
	// FindByOwner retorna a franquia ativa do franqueado, ou nil
	FindByOwner(ctx context.Context, userID string) (*entities.Franchise, error)
	Update(ctx context.Context, franchise *entities.Franchise) error
	UpdateScore(ctx context.Context, id string, score int) error
	// ReleaseOwner desvincula o usuário da franquia que ele possui
	ReleaseOwner(ctx context.Context, userID string) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters FranchiseFilters) ([]*entities.Franchise, error)
}

// FranchiseFilters contém filtros para listagem de franquias
type FranchiseFilters struct {
	MinScore *int
	MaxScore *int
	Search   string // nome, endereço ou cnpj
	Deleted  bool
	Scope    Scope
	Pagination
}
