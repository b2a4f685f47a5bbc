package services

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// FranchiseService contém a lógica de negócio para franquias
type FranchiseService struct {
	franchiseRepo repositories.FranchiseRepository
	userRepo      repositories.UserRepository
	scopes        *ScopeResolver
	scores        *ScoreAggregator
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewFranchiseService cria um novo FranchiseService
func NewFranchiseService(
	franchiseRepo repositories.FranchiseRepository,
	userRepo repositories.UserRepository,
	scopes *ScopeResolver,
	scores *ScoreAggregator,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *FranchiseService {
	return &FranchiseService{
		franchiseRepo: franchiseRepo,
		userRepo:      userRepo,
		scopes:        scopes,
		scores:        scores,
		uow:           uow,
		logger:        logger,
	}
}

// CreateFranchiseInput representa os dados para criar uma franquia
type CreateFranchiseInput struct {
	Name    string
	Address string
	CNPJ    string
	Phone   string
}

// CreateFranchise cria uma franquia sem dono e com score zero
func (s *FranchiseService) CreateFranchise(ctx context.Context, caller *entities.User, input CreateFranchiseInput) (*entities.Franchise, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}

	franchise := &entities.Franchise{
		Name:    input.Name,
		Address: input.Address,
		CNPJ:    input.CNPJ,
		Phone:   input.Phone,
	}
	if err := s.franchiseRepo.Create(ctx, franchise); err != nil {
		return nil, err
	}

	s.logger.Info("franchise created", "franchise_id", franchise.ID, "created_by", caller.ID)
	return franchise, nil
}

// ListFranchises lista as franquias visíveis ao chamador
func (s *FranchiseService) ListFranchises(ctx context.Context, caller *entities.User, filters repositories.FranchiseFilters) ([]*entities.Franchise, error) {
	scope, err := s.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	filters.Scope = scope
	return s.franchiseRepo.List(ctx, filters)
}

// GetFranchise busca uma franquia (inclusive removida) dentro do escopo do chamador
func (s *FranchiseService) GetFranchise(ctx context.Context, caller *entities.User, id string) (*entities.Franchise, error) {
	franchise, err := s.findFranchise(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.scopes.Authorize(ctx, caller, franchise.ID); err != nil {
		return nil, err
	}
	return franchise, nil
}

func (s *FranchiseService) findFranchise(ctx context.Context, id string) (*entities.Franchise, error) {
	franchise, err := s.franchiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, errors.ErrFranchiseNotFound
	}
	return franchise, nil
}

// UpdateFranchiseInput contém os campos opcionais de atualização (patch)
type UpdateFranchiseInput struct {
	Name    *string
	Address *string
	CNPJ    *string
	Phone   *string
}

// UpdateFranchise aplica o patch e recalcula o score
func (s *FranchiseService) UpdateFranchise(ctx context.Context, caller *entities.User, id string, input UpdateFranchiseInput) (*entities.Franchise, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}

	franchise, err := s.findFranchise(ctx, id)
	if err != nil {
		return nil, err
	}

	franchise.Name = valueOr(input.Name, franchise.Name)
	franchise.Address = valueOr(input.Address, franchise.Address)
	franchise.CNPJ = valueOr(input.CNPJ, franchise.CNPJ)
	franchise.Phone = valueOr(input.Phone, franchise.Phone)

	if err := s.franchiseRepo.Update(ctx, franchise); err != nil {
		return nil, err
	}

	score, err := s.scores.Recalculate(ctx, franchise.ID)
	if err != nil {
		return nil, err
	}
	franchise.Score = score

	s.logger.Info("franchise updated", "franchise_id", franchise.ID, "updated_by", caller.ID)
	return franchise, nil
}

// SetOwner vincula um franqueado ativo à franquia. Um franqueado possui no
// máximo uma franquia.
func (s *FranchiseService) SetOwner(ctx context.Context, caller *entities.User, id, userID string) (*entities.Franchise, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}

	var franchise *entities.Franchise
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		franchise, err = s.findFranchise(ctx, id)
		if err != nil {
			return err
		}
		if franchise.IsDeleted() {
			return errors.ErrInactiveReference.With(map[string]interface{}{"Resource": "franchise"})
		}

		owner, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if owner == nil {
			return errors.ErrUserNotFound
		}
		if owner.IsDeleted() || owner.Role != entities.RoleFranchisee {
			return errors.ErrOwnerNotFranchisee
		}

		owned, err := s.franchiseRepo.FindByOwner(ctx, userID)
		if err != nil {
			return err
		}
		if owned != nil && owned.ID != franchise.ID {
			return errors.ErrAlreadyOwnsFranchise
		}

		franchise.UserID = &userID
		return s.franchiseRepo.Update(ctx, franchise)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("franchise owner set", "franchise_id", id, "user_id", userID, "updated_by", caller.ID)
	return franchise, nil
}

// RecalculateScore força o recálculo do score e retorna a franquia atualizada
func (s *FranchiseService) RecalculateScore(ctx context.Context, caller *entities.User, id string) (*entities.Franchise, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}

	franchise, err := s.findFranchise(ctx, id)
	if err != nil {
		return nil, err
	}

	score, err := s.scores.Recalculate(ctx, franchise.ID)
	if err != nil {
		return nil, err
	}
	franchise.Score = score
	return franchise, nil
}

// DeleteFranchise faz soft delete e libera o franqueado
func (s *FranchiseService) DeleteFranchise(ctx context.Context, caller *entities.User, id string) error {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return err
	}

	if _, err := s.findFranchise(ctx, id); err != nil {
		return err
	}
	if err := s.franchiseRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("franchise deleted", "franchise_id", id, "deleted_by", caller.ID)
	return nil
}
