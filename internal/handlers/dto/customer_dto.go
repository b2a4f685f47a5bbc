package dto

import (
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// CreateCustomerRequest representa a requisição para cadastrar um cliente
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	CNPJ        string `json:"cnpj" binding:"required,cnpj"`
	Address     string `json:"address" binding:"required,min=8,max=255"`
	Phone       string `json:"phone" binding:"required,phonebr"`
	FranchiseID string `json:"franchiseId" binding:"required,uuid"`
}

func (r CreateCustomerRequest) ToInput() services.CreateCustomerInput {
	return services.CreateCustomerInput{
		Name:        r.Name,
		CNPJ:        r.CNPJ,
		Address:     r.Address,
		Phone:       r.Phone,
		FranchiseID: r.FranchiseID,
	}
}

// UpdateCustomerRequest representa a atualização parcial de um cliente
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=3,max=50"`
	CNPJ    *string `json:"cnpj" binding:"omitempty,cnpj"`
	Address *string `json:"address" binding:"omitempty,min=8,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,phonebr"`
}

func (r UpdateCustomerRequest) ToInput() services.UpdateCustomerInput {
	return services.UpdateCustomerInput{
		Name:    r.Name,
		CNPJ:    r.CNPJ,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

// ListCustomersQuery são os filtros de GET /customer
type ListCustomersQuery struct {
	Search string `form:"search"`
	DeletedQuery
	PageQuery
}

func (q ListCustomersQuery) ToFilters() repositories.CustomerFilters {
	return repositories.CustomerFilters{
		Search:     q.Search,
		Deleted:    q.deleted(),
		Pagination: q.pagination(),
	}
}

// CustomerResponse representa a resposta de um cliente
type CustomerResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CNPJ        string     `json:"cnpj"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	FranchiseID string     `json:"franchiseId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

func ToCustomerResponse(c *entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		CNPJ:        c.CNPJ,
		Address:     c.Address,
		Phone:       c.Phone,
		FranchiseID: c.FranchiseID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func ToCustomerResponses(customers []*entities.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = ToCustomerResponse(c)
	}
	return responses
}
