package repositories

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	// FindByID inclui usuários deletados (soft delete)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	// FindByEmail ignora usuários deletados
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role    *entities.Role
	Search  string // nome ou email
	Deleted bool   // true lista apenas deletados
	Pagination
}
