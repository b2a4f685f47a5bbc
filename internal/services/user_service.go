package services

import (
	"context"
	"strings"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo      repositories.UserRepository
	franchiseRepo repositories.FranchiseRepository
	hasher        ports.PasswordHasher
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	franchiseRepo repositories.FranchiseRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		franchiseRepo: franchiseRepo,
		hasher:        hasher,
		uow:           uow,
		logger:        logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	CPF             string
	Address         string
	Phone           string
	Role            *entities.Role // Apenas MANAGER pode escolher o papel
}

// CreateUser cria um usuário com o papel definido pela tabela de criação.
// O criador vira o ownerId da nova conta.
func (s *UserService) CreateUser(ctx context.Context, caller *entities.User, input CreateUserInput) (*entities.User, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleFranchisee, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}

	if input.Password != input.ConfirmPassword {
		return nil, errors.ErrPasswordMismatch
	}

	role, err := s.assignedRole(caller, input.Role)
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail.Wrap(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	ownerID := caller.ID
	user := &entities.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CPF:          input.CPF,
		Address:      input.Address,
		Phone:        input.Phone,
		OwnerID:      &ownerID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"role", user.Role,
		"created_by", caller.ID,
	)
	return user, nil
}

func (s *UserService) assignedRole(caller *entities.User, requested *entities.Role) (entities.Role, error) {
	role := caller.Role.CreatedRole()
	if requested == nil || *requested == role {
		return role, nil
	}
	if !requested.IsValid() {
		return "", errors.ErrInvalidRole.With(map[string]interface{}{"Roles": rolesList()})
	}
	if err := policy.RequireRole(caller.Role, entities.RoleManager); err != nil {
		return "", err
	}
	return *requested, nil
}

// GetUser busca um usuário por ID (inclusive removidos)
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros; funcionários não listam usuários
func (s *UserService) ListUsers(ctx context.Context, caller *entities.User, filters repositories.UserFilters) ([]*entities.User, error) {
	if err := policy.ForbidRole(caller.Role, entities.RoleEmployee); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx, filters)
}

// UpdateUserInput contém os campos opcionais de atualização (patch)
type UpdateUserInput struct {
	Name    *string
	Email   *string
	CPF     *string
	Address *string
	Phone   *string
}

// UpdateUser aplica apenas os campos informados. O próprio usuário ou a
// operação da rede podem alterar o cadastro.
func (s *UserService) UpdateUser(ctx context.Context, caller *entities.User, id string, input UpdateUserInput) (*entities.User, error) {
	if err := s.requireSelfOrStaff(caller, id); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail.Wrap(err)
		}
		user.Email = email
	}
	user.Name = valueOr(input.Name, user.Name)
	user.CPF = valueOr(input.CPF, user.CPF)
	user.Address = valueOr(input.Address, user.Address)
	user.Phone = valueOr(input.Phone, user.Phone)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID, "updated_by", caller.ID)
	return user, nil
}

// UpdateUserRole altera o papel de um usuário (OPERATOR/MANAGER)
func (s *UserService) UpdateUserRole(ctx context.Context, caller *entities.User, id, role string) (*entities.User, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}

	newRole, ok := entities.ParseRole(role)
	if !ok {
		return nil, errors.ErrInvalidRole.With(map[string]interface{}{"Roles": rolesList()})
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = newRole
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user role updated", "user_id", user.ID, "role", newRole, "updated_by", caller.ID)
	return user, nil
}

// UpdatePasswordInput contém a troca de senha
type UpdatePasswordInput struct {
	CurrentPassword string
	Password        string
	ConfirmPassword string
}

// UpdatePassword troca a senha após conferir a senha atual e a confirmação
func (s *UserService) UpdatePassword(ctx context.Context, caller *entities.User, id string, input UpdatePasswordInput) error {
	if err := s.requireSelfOrStaff(caller, id); err != nil {
		return err
	}
	if input.Password != input.ConfirmPassword {
		return errors.ErrPasswordMismatch
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(user.PasswordHash, input.CurrentPassword) {
		return errors.ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user password updated", "user_id", user.ID)
	return nil
}

// DeleteUser faz soft delete do usuário e, na mesma transação, libera a
// franquia que ele possuía.
func (s *UserService) DeleteUser(ctx context.Context, caller *entities.User, id string) error {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return err
	}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.GetUser(ctx, id)
		if err != nil {
			return err
		}
		if user.IsDeleted() {
			return nil
		}

		if err := s.userRepo.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.franchiseRepo.ReleaseOwner(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id, "deleted_by", caller.ID)
	return nil
}

func (s *UserService) requireSelfOrStaff(caller *entities.User, id string) error {
	if caller.ID == id || caller.Role.IsNetworkStaff() {
		return nil
	}
	return errors.ErrOutOfScope
}

func rolesList() string {
	names := make([]string, 0, len(entities.Roles()))
	for _, role := range entities.Roles() {
		names = append(names, role.String())
	}
	return strings.Join(names, ", ")
}

// valueOr retorna *v quando informado, senão o valor atual
func valueOr[T any](v *T, current T) T {
	if v == nil {
		return current
	}
	return *v
}
