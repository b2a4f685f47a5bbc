package services

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// ScopeResolver resolve quais franquias o chamador enxerga.
//
//   - OPERATOR/MANAGER: toda a rede
//   - FRANCHISEE: a franquia da qual é dono
//   - EMPLOYEE: a franquia do franqueado que criou a conta (ownerId)
//
// Sem franquia encontrada o escopo fica vazio e nenhuma consulta retorna registros.
type ScopeResolver struct {
	franchiseRepo repositories.FranchiseRepository
}

// NewScopeResolver cria um novo ScopeResolver
func NewScopeResolver(franchiseRepo repositories.FranchiseRepository) *ScopeResolver {
	return &ScopeResolver{franchiseRepo: franchiseRepo}
}

// Resolve calcula o escopo do chamador
func (r *ScopeResolver) Resolve(ctx context.Context, caller *entities.User) (repositories.Scope, error) {
	if caller == nil {
		return repositories.RestrictedTo(""), nil
	}
	if caller.Role.IsNetworkStaff() {
		return repositories.Unrestricted(), nil
	}

	ownerID := ""
	switch caller.Role {
	case entities.RoleFranchisee:
		ownerID = caller.ID
	case entities.RoleEmployee:
		if caller.OwnerID != nil {
			ownerID = *caller.OwnerID
		}
	}
	if ownerID == "" {
		return repositories.RestrictedTo(""), nil
	}

	franchise, err := r.franchiseRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return repositories.Scope{}, err
	}
	if franchise == nil {
		return repositories.RestrictedTo(""), nil
	}
	return repositories.RestrictedTo(franchise.ID), nil
}

// Authorize resolve o escopo e verifica se a franquia informada está nele
func (r *ScopeResolver) Authorize(ctx context.Context, caller *entities.User, franchiseID string) error {
	scope, err := r.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	if !scope.Allows(franchiseID) {
		return errors.ErrOutOfScope
	}
	return nil
}
