package dto

import (
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// CreateFranchiseRequest representa a requisição para criar uma franquia
type CreateFranchiseRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=50"`
	Address string `json:"address" binding:"required,min=8,max=255"`
	CNPJ    string `json:"cnpj" binding:"required,cnpj"`
	Phone   string `json:"phone" binding:"required,phonebr"`
}

func (r CreateFranchiseRequest) ToInput() services.CreateFranchiseInput {
	return services.CreateFranchiseInput{
		Name:    r.Name,
		Address: r.Address,
		CNPJ:    r.CNPJ,
		Phone:   r.Phone,
	}
}

// UpdateFranchiseRequest representa a atualização parcial de uma franquia
type UpdateFranchiseRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=3,max=50"`
	Address *string `json:"address" binding:"omitempty,min=8,max=255"`
	CNPJ    *string `json:"cnpj" binding:"omitempty,cnpj"`
	Phone   *string `json:"phone" binding:"omitempty,phonebr"`
}

func (r UpdateFranchiseRequest) ToInput() services.UpdateFranchiseInput {
	return services.UpdateFranchiseInput{
		Name:    r.Name,
		Address: r.Address,
		CNPJ:    r.CNPJ,
		Phone:   r.Phone,
	}
}

// SetFranchiseOwnerRequest vincula um franqueado à franquia
type SetFranchiseOwnerRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// ListFranchisesQuery são os filtros de GET /franchise
type ListFranchisesQuery struct {
	MinScore *int   `form:"minscore" binding:"omitempty,gte=0"`
	MaxScore *int   `form:"maxscore" binding:"omitempty,gte=0"`
	Search   string `form:"search"`
	DeletedQuery
	PageQuery
}

func (q ListFranchisesQuery) ToFilters() repositories.FranchiseFilters {
	return repositories.FranchiseFilters{
		MinScore:   q.MinScore,
		MaxScore:   q.MaxScore,
		Search:     q.Search,
		Deleted:    q.deleted(),
		Pagination: q.pagination(),
	}
}

// FranchiseResponse representa a resposta de uma franquia
type FranchiseResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	CNPJ      string     `json:"cnpj"`
	Phone     string     `json:"phone"`
	Score     int        `json:"score"`
	UserID    *string    `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

func ToFranchiseResponse(f *entities.Franchise) FranchiseResponse {
	return FranchiseResponse{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		CNPJ:      f.CNPJ,
		Phone:     f.Phone,
		Score:     f.Score,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		DeletedAt: f.DeletedAt,
	}
}

func ToFranchiseResponses(franchises []*entities.Franchise) []FranchiseResponse {
	responses := make([]FranchiseResponse, len(franchises))
	for i, f := range franchises {
		responses[i] = ToFranchiseResponse(f)
	}
	return responses
}
