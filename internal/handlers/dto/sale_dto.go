package dto

import (
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// CreateSaleRequest representa a requisição para registrar uma venda.
// Sem userId a venda fica em nome de quem chama.
type CreateSaleRequest struct {
	Description *string `json:"description" binding:"omitempty,max=255"`
	CustomerID  string  `json:"customerId" binding:"required,uuid"`
	FranchiseID string  `json:"franchiseId" binding:"required,uuid"`
	ProductID   string  `json:"productId" binding:"required,uuid"`
	UserID      string  `json:"userId" binding:"omitempty,uuid"`
}

func (r CreateSaleRequest) ToInput() services.CreateSaleInput {
	return services.CreateSaleInput{
		Description: r.Description,
		CustomerID:  r.CustomerID,
		FranchiseID: r.FranchiseID,
		ProductID:   r.ProductID,
		UserID:      r.UserID,
	}
}

// UpdateSaleRequest altera apenas a descrição
type UpdateSaleRequest struct {
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// ListSalesQuery são os filtros das listagens de venda
type ListSalesQuery struct {
	Search string `form:"search"`
	DeletedQuery
	PageQuery
}

func (q ListSalesQuery) ToFilters() repositories.SaleFilters {
	return repositories.SaleFilters{
		Search:     q.Search,
		Deleted:    q.deleted(),
		Pagination: q.pagination(),
	}
}

// SaleResponse representa a resposta de uma venda
type SaleResponse struct {
	ID          string     `json:"id"`
	Description *string    `json:"description"`
	CustomerID  string     `json:"customerId"`
	FranchiseID string     `json:"franchiseId"`
	ProductID   string     `json:"productId"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

func ToSaleResponse(s *entities.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Description: s.Description,
		CustomerID:  s.CustomerID,
		FranchiseID: s.FranchiseID,
		ProductID:   s.ProductID,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		DeletedAt:   s.DeletedAt,
	}
}

func ToSaleResponses(sales []*entities.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(s)
	}
	return responses
}
