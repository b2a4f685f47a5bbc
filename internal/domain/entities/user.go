package entities

import (
	"time"

	"github.com/rafabene/hyperlocal-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID           string
	Name         string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	CPF          string
	Address      string
	Phone        string
	OwnerID      *string // Quem criou a conta (franqueado, operador...)
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// HasRole verifica se o usuário possui algum dos papéis informados
func (u *User) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}
