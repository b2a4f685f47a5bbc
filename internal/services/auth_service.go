package services

import (
	"context"
	"strings"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/domain/valueobjects"
)

// AuthService autentica usuários e valida access tokens
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignIn valida email e senha e emite um access token.
// Email desconhecido e senha errada produzem o mesmo erro.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn("sign in rejected", "email", email)
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email.String(), user.Role.String())
	if err != nil {
		return "", err
	}

	s.logger.Info("user signed in", "user_id", user.ID, "role", user.Role)
	return token, nil
}

// Authenticate resolve o usuário dono do token; usuários removidos perdem o acesso
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, errors.ErrUnauthenticated.Wrap(err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted() {
		return nil, errors.ErrUnauthenticated
	}
	return user, nil
}

// SeedManagerInput contém os dados da conta MANAGER inicial
type SeedManagerInput struct {
	Name     string
	Email    string
	Password string
}

// SeedManager cria a conta MANAGER inicial quando o email ainda não existe.
// Retorna true quando a conta foi criada.
func (s *AuthService) SeedManager(ctx context.Context, input SeedManagerInput) (bool, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return false, errors.ErrInvalidEmail.Wrap(err)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return false, err
	}

	manager := &entities.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleManager,
		CPF:          "00000000000",
		Address:      "-",
		Phone:        "-",
	}
	if err := s.userRepo.Create(ctx, manager); err != nil {
		return false, err
	}

	s.logger.Info("manager account seeded", "user_id", manager.ID, "email", email.String())
	return true, nil
}
