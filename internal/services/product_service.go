package services

import (
	"context"
	"strings"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// ProductService contém a lógica de negócio do catálogo de produtos.
// Todo o catálogo é administrado pela operação (OPERATOR/MANAGER).
type ProductService struct {
	productRepo repositories.ProductRepository
	logger      ports.Logger
}

// NewProductService cria um novo ProductService
func NewProductService(productRepo repositories.ProductRepository, logger ports.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProductInput representa os dados para criar um produto
type CreateProductInput struct {
	Name        string
	Description string
	Plan        string
	Score       int
}

func (s *ProductService) CreateProduct(ctx context.Context, caller *entities.User, input CreateProductInput) (*entities.Product, error) {
	if err := requireNetworkStaff(caller); err != nil {
		return nil, err
	}

	plan, err := parsePlan(input.Plan)
	if err != nil {
		return nil, err
	}
	if err := validateScore(input.Score); err != nil {
		return nil, err
	}

	product := &entities.Product{
		Name:        input.Name,
		Description: input.Description,
		Plan:        plan,
		Score:       input.Score,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", "product_id", product.ID, "plan", plan, "score", product.Score)
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, caller *entities.User, filters repositories.ProductFilters) ([]*entities.Product, error) {
	if err := requireNetworkStaff(caller); err != nil {
		return nil, err
	}
	return s.productRepo.List(ctx, filters)
}

func (s *ProductService) GetProduct(ctx context.Context, caller *entities.User, id string) (*entities.Product, error) {
	if err := requireNetworkStaff(caller); err != nil {
		return nil, err
	}
	return s.findProduct(ctx, id)
}

func (s *ProductService) findProduct(ctx context.Context, id string) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}
	return product, nil
}

// UpdateProductInput contém os campos opcionais de atualização (patch)
type UpdateProductInput struct {
	Name        *string
	Description *string
	Score       *int
}

func (s *ProductService) UpdateProduct(ctx context.Context, caller *entities.User, id string, input UpdateProductInput) (*entities.Product, error) {
	if err := requireNetworkStaff(caller); err != nil {
		return nil, err
	}

	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Score != nil {
		if err := validateScore(*input.Score); err != nil {
			return nil, err
		}
	}
	product.Name = valueOr(input.Name, product.Name)
	product.Description = valueOr(input.Description, product.Description)
	product.Score = valueOr(input.Score, product.Score)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "product_id", product.ID)
	return product, nil
}

// UpdateProductPlan troca o plano; o valor é aceito em qualquer caixa
func (s *ProductService) UpdateProductPlan(ctx context.Context, caller *entities.User, id, plan string) (*entities.Product, error) {
	if err := requireNetworkStaff(caller); err != nil {
		return nil, err
	}

	newPlan, err := parsePlan(plan)
	if err != nil {
		return nil, err
	}

	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Plan = newPlan
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product plan updated", "product_id", product.ID, "plan", newPlan)
	return product, nil
}

// DeleteProduct remove o produto; produtos já vendidos não podem ser removidos
func (s *ProductService) DeleteProduct(ctx context.Context, caller *entities.User, id string) error {
	if err := requireNetworkStaff(caller); err != nil {
		return err
	}

	if _, err := s.findProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", "product_id", id, "deleted_by", caller.ID)
	return nil
}

func requireNetworkStaff(caller *entities.User) error {
	return policy.RequireRole(caller.Role, entities.RoleOperator, entities.RoleManager)
}

func parsePlan(value string) (entities.Plan, error) {
	plan, ok := entities.ParsePlan(value)
	if !ok {
		names := make([]string, 0, len(entities.Plans()))
		for _, p := range entities.Plans() {
			names = append(names, string(p))
		}
		return "", errors.ErrInvalidPlan.With(map[string]interface{}{"Plans": strings.Join(names, ", ")})
	}
	return plan, nil
}

func validateScore(score int) error {
	if score < entities.MinProductScore || score > entities.MaxProductScore {
		return errors.ErrInvalidScore.With(map[string]interface{}{
			"Min": entities.MinProductScore,
			"Max": entities.MaxProductScore,
		})
	}
	return nil
}
