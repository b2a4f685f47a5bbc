package dto

import (
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// CreateProductRequest representa a requisição para criar um produto
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"max=100"`
	Plan        string `json:"plan" binding:"required"`
	Score       int    `json:"score" binding:"required"`
}

func (r CreateProductRequest) ToInput() services.CreateProductInput {
	return services.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Plan:        r.Plan,
		Score:       r.Score,
	}
}

// UpdateProductRequest representa a atualização parcial de um produto.
// O plano tem rota própria.
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=50"`
	Description *string `json:"description" binding:"omitempty,max=100"`
	Score       *int    `json:"score"`
}

func (r UpdateProductRequest) ToInput() services.UpdateProductInput {
	return services.UpdateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Score:       r.Score,
	}
}

// UpdateProductPlanRequest altera o plano de um produto
type UpdateProductPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// ListProductsQuery são os filtros de GET /product
type ListProductsQuery struct {
	Plan   string `form:"plan" binding:"omitempty,plan"`
	Search string `form:"search"`
	PageQuery
}

func (q ListProductsQuery) ToFilters() repositories.ProductFilters {
	filters := repositories.ProductFilters{
		Search:     q.Search,
		Pagination: q.pagination(),
	}
	if q.Plan != "" {
		plan, _ := entities.ParsePlan(q.Plan)
		filters.Plan = &plan
	}
	return filters
}

// ProductResponse representa a resposta de um produto
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Plan        string    `json:"plan"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToProductResponse(p *entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Plan:        string(p.Plan),
		Score:       p.Score,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProductResponses(products []*entities.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}
