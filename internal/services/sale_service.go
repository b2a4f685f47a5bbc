package services

import (
	"context"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// SaleService contém a lógica de negócio para vendas
type SaleService struct {
	saleRepo      repositories.SaleRepository
	userRepo      repositories.UserRepository
	customerRepo  repositories.CustomerRepository
	franchiseRepo repositories.FranchiseRepository
	productRepo   repositories.ProductRepository
	scopes        *ScopeResolver
	scores        *ScoreAggregator
	logger        ports.Logger
}

// NewSaleService cria um novo SaleService
func NewSaleService(
	saleRepo repositories.SaleRepository,
	userRepo repositories.UserRepository,
	customerRepo repositories.CustomerRepository,
	franchiseRepo repositories.FranchiseRepository,
	productRepo repositories.ProductRepository,
	scopes *ScopeResolver,
	scores *ScoreAggregator,
	logger ports.Logger,
) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		userRepo:      userRepo,
		customerRepo:  customerRepo,
		franchiseRepo: franchiseRepo,
		productRepo:   productRepo,
		scopes:        scopes,
		scores:        scores,
		logger:        logger,
	}
}

// CreateSaleInput representa os dados para registrar uma venda.
// UserID vazio registra a venda em nome do chamador.
type CreateSaleInput struct {
	Description *string
	CustomerID  string
	FranchiseID string
	ProductID   string
	UserID      string
}

// CreateSale valida todas as referências antes de inserir e recalcula o
// score da franquia após a inserção.
func (s *SaleService) CreateSale(ctx context.Context, caller *entities.User, input CreateSaleInput) (*entities.Sale, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleEmployee, entities.RoleFranchisee); err != nil {
		return nil, err
	}

	sellerID := input.UserID
	if sellerID == "" {
		sellerID = caller.ID
	}
	seller, err := s.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.ErrUserNotFound
	}
	if seller.IsDeleted() {
		return nil, errors.ErrInactiveReference.With(map[string]interface{}{"Resource": "user"})
	}
	if !seller.HasRole(entities.RoleEmployee, entities.RoleFranchisee) {
		return nil, errors.ErrSellerRole
	}

	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.ErrCustomerNotFound
	}

	franchise, err := s.franchiseRepo.FindByID(ctx, input.FranchiseID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, errors.ErrFranchiseNotFound
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}

	if err := s.scopes.Authorize(ctx, caller, franchise.ID); err != nil {
		return nil, err
	}
	if customer.FranchiseID != franchise.ID {
		return nil, errors.ErrOutOfScope
	}
	// o vendedor também precisa pertencer à franquia da venda
	sellerScope, err := s.scopes.Resolve(ctx, seller)
	if err != nil {
		return nil, err
	}
	if !sellerScope.Allows(franchise.ID) {
		return nil, errors.ErrOutOfScope
	}
	if customer.IsDeleted() {
		return nil, errors.ErrInactiveReference.With(map[string]interface{}{"Resource": "customer"})
	}
	if franchise.IsDeleted() {
		return nil, errors.ErrInactiveReference.With(map[string]interface{}{"Resource": "franchise"})
	}

	sale := &entities.Sale{
		Description: input.Description,
		CustomerID:  customer.ID,
		FranchiseID: franchise.ID,
		ProductID:   product.ID,
		UserID:      seller.ID,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.refreshScore(ctx, franchise.ID)

	s.logger.Info("sale created",
		"sale_id", sale.ID,
		"franchise_id", sale.FranchiseID,
		"product_id", sale.ProductID,
		"user_id", sale.UserID,
	)
	return sale, nil
}

// ListSales lista vendas do escopo do chamador; funcionários não listam vendas
func (s *SaleService) ListSales(ctx context.Context, caller *entities.User, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	if err := policy.ForbidRole(caller.Role, entities.RoleEmployee); err != nil {
		return nil, err
	}
	return s.list(ctx, caller, filters)
}

// ListSalesByFranchise lista vendas de uma franquia; o franqueado só acessa a própria
func (s *SaleService) ListSalesByFranchise(ctx context.Context, caller *entities.User, franchiseID string, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	if err := policy.ForbidRole(caller.Role, entities.RoleEmployee); err != nil {
		return nil, err
	}
	if err := s.scopes.Authorize(ctx, caller, franchiseID); err != nil {
		return nil, err
	}
	filters.FranchiseID = franchiseID
	return s.list(ctx, caller, filters)
}

// ListSalesByCustomer lista vendas de um cliente dentro do escopo
func (s *SaleService) ListSalesByCustomer(ctx context.Context, caller *entities.User, customerID string, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	filters.CustomerID = customerID
	return s.list(ctx, caller, filters)
}

// ListSalesByUser lista vendas registradas por um usuário dentro do escopo
func (s *SaleService) ListSalesByUser(ctx context.Context, caller *entities.User, userID string, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	filters.UserID = userID
	return s.list(ctx, caller, filters)
}

// ListSalesByProduct lista vendas de um produto em toda a rede (OPERATOR/MANAGER)
func (s *SaleService) ListSalesByProduct(ctx context.Context, caller *entities.User, productID string, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return nil, err
	}
	filters.ProductID = productID
	return s.list(ctx, caller, filters)
}

func (s *SaleService) list(ctx context.Context, caller *entities.User, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	scope, err := s.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	filters.Scope = scope
	return s.saleRepo.List(ctx, filters)
}

// GetSale busca uma venda visível ao chamador (inclusive removida)
func (s *SaleService) GetSale(ctx context.Context, caller *entities.User, id string) (*entities.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, errors.ErrSaleNotFound
	}
	if err := s.scopes.Authorize(ctx, caller, sale.FranchiseID); err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSale altera apenas a descrição da venda
func (s *SaleService) UpdateSale(ctx context.Context, caller *entities.User, id string, description *string) (*entities.Sale, error) {
	if err := policy.ForbidRole(caller.Role, entities.RoleEmployee); err != nil {
		return nil, err
	}

	sale, err := s.GetSale(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if description != nil {
		sale.Description = description
	}
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info("sale updated", "sale_id", sale.ID, "updated_by", caller.ID)
	return sale, nil
}

// DeleteSale faz soft delete e recalcula o score da franquia
func (s *SaleService) DeleteSale(ctx context.Context, caller *entities.User, id string) error {
	if err := policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager); err != nil {
		return err
	}

	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return errors.ErrSaleNotFound
	}

	if err := s.saleRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.refreshScore(ctx, sale.FranchiseID)

	s.logger.Info("sale deleted", "sale_id", id, "deleted_by", caller.ID)
	return nil
}

// refreshScore recalcula o score após uma escrita já gravada. Uma falha só é
// logada: a venda permanece e POST /franchise/:id/score corrige o valor.
func (s *SaleService) refreshScore(ctx context.Context, franchiseID string) {
	if _, err := s.scores.Recalculate(ctx, franchiseID); err != nil {
		s.logger.Error("failed to recalculate franchise score",
			"franchise_id", franchiseID,
			"error", err,
		)
	}
}
