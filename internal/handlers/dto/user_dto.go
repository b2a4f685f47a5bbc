package dto

import (
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Name            string  `json:"name" binding:"required,min=3,max=50"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,strongpassword"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required"`
	CPF             string  `json:"cpf" binding:"required,len=11"`
	Address         string  `json:"address" binding:"required,min=8,max=255"`
	Phone           string  `json:"phone" binding:"required,phonebr"`
	Role            *string `json:"role" binding:"omitempty,role"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateUserRequest) ToInput() services.CreateUserInput {
	input := services.CreateUserInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		CPF:             r.CPF,
		Address:         r.Address,
		Phone:           r.Phone,
	}
	if r.Role != nil {
		role, _ := entities.ParseRole(*r.Role)
		input.Role = &role
	}
	return input
}

// UpdateUserRequest representa a requisição para atualizar um usuário (patch)
type UpdateUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=3,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	CPF     *string `json:"cpf" binding:"omitempty,len=11"`
	Address *string `json:"address" binding:"omitempty,min=8,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,phonebr"`
}

func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Name:    r.Name,
		Email:   r.Email,
		CPF:     r.CPF,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

// UpdateUserRoleRequest altera o papel de um usuário
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdatePasswordRequest troca a senha do usuário
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	Password        string `json:"password" binding:"required,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (r UpdatePasswordRequest) ToInput() services.UpdatePasswordInput {
	return services.UpdatePasswordInput{
		CurrentPassword: r.CurrentPassword,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// ListUsersQuery são os filtros de GET /user
type ListUsersQuery struct {
	Role   string `form:"role" binding:"omitempty,role"`
	Search string `form:"search"`
	DeletedQuery
	PageQuery
}

func (q ListUsersQuery) ToFilters() repositories.UserFilters {
	filters := repositories.UserFilters{
		Search:     q.Search,
		Deleted:    q.deleted(),
		Pagination: q.pagination(),
	}
	if q.Role != "" {
		role, _ := entities.ParseRole(q.Role)
		filters.Role = &role
	}
	return filters
}

// UserResponse representa a resposta de um usuário. Nunca carrega a senha.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CPF       string     `json:"cpf"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	OwnerID   *string    `json:"ownerId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		Role:      user.Role.String(),
		CPF:       user.CPF,
		Address:   user.Address,
		Phone:     user.Phone,
		OwnerID:   user.OwnerID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		DeletedAt: user.DeletedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
