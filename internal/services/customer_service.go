package services

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// CustomerService contém a lógica de negócio para clientes das franquias
type CustomerService struct {
	customerRepo  repositories.CustomerRepository
	franchiseRepo repositories.FranchiseRepository
	scopes        *ScopeResolver
	logger        ports.Logger
}

// NewCustomerService cria um novo CustomerService
func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	franchiseRepo repositories.FranchiseRepository,
	scopes *ScopeResolver,
	logger ports.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo:  customerRepo,
		franchiseRepo: franchiseRepo,
		scopes:        scopes,
		logger:        logger,
	}
}

// CreateCustomerInput representa os dados para criar um cliente
type CreateCustomerInput struct {
	Name        string
	Address     string
	CNPJ        string
	Phone       string
	FranchiseID string
}

// CreateCustomer cadastra um cliente na franquia do chamador
func (s *CustomerService) CreateCustomer(ctx context.Context, caller *entities.User, input CreateCustomerInput) (*entities.Customer, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleFranchisee, entities.RoleEmployee); err != nil {
		return nil, err
	}

	franchise, err := s.franchiseRepo.FindByID(ctx, input.FranchiseID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, errors.ErrFranchiseNotFound
	}
	if err := s.scopes.Authorize(ctx, caller, franchise.ID); err != nil {
		return nil, err
	}
	if franchise.IsDeleted() {
		return nil, errors.ErrInactiveReference.With(map[string]interface{}{"Resource": "franchise"})
	}

	customer := &entities.Customer{
		Name:        input.Name,
		Address:     input.Address,
		CNPJ:        input.CNPJ,
		Phone:       input.Phone,
		FranchiseID: franchise.ID,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		"customer_id", customer.ID,
		"franchise_id", customer.FranchiseID,
		"created_by", caller.ID,
	)
	return customer, nil
}

// ListCustomers lista clientes do escopo do chamador
func (s *CustomerService) ListCustomers(ctx context.Context, caller *entities.User, filters repositories.CustomerFilters) ([]*entities.Customer, error) {
	scope, err := s.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	filters.Scope = scope
	return s.customerRepo.List(ctx, filters)
}

// GetCustomer busca um cliente visível ao chamador (inclusive removido)
func (s *CustomerService) GetCustomer(ctx context.Context, caller *entities.User, id string) (*entities.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.ErrCustomerNotFound
	}
	if err := s.scopes.Authorize(ctx, caller, customer.FranchiseID); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomerInput contém os campos opcionais de atualização (patch)
type UpdateCustomerInput struct {
	Name    *string
	Address *string
	CNPJ    *string
	Phone   *string
}

// UpdateCustomer aplica o patch em um cliente da franquia do chamador
func (s *CustomerService) UpdateCustomer(ctx context.Context, caller *entities.User, id string, input UpdateCustomerInput) (*entities.Customer, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleFranchisee, entities.RoleEmployee); err != nil {
		return nil, err
	}

	customer, err := s.GetCustomer(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	customer.Name = valueOr(input.Name, customer.Name)
	customer.Address = valueOr(input.Address, customer.Address)
	customer.CNPJ = valueOr(input.CNPJ, customer.CNPJ)
	customer.Phone = valueOr(input.Phone, customer.Phone)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer updated", "customer_id", customer.ID, "updated_by", caller.ID)
	return customer, nil
}

// DeleteCustomer faz soft delete de um cliente da franquia do chamador
func (s *CustomerService) DeleteCustomer(ctx context.Context, caller *entities.User, id string) error {
	if err := policy.RequireRole(caller.Role, entities.RoleFranchisee, entities.RoleEmployee); err != nil {
		return err
	}

	if _, err := s.GetCustomer(ctx, caller, id); err != nil {
		return err
	}
	if err := s.customerRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("customer deleted", "customer_id", id, "deleted_by", caller.ID)
	return nil
}
