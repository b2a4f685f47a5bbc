package entities

import "time"

// Franchise representa uma unidade da rede
type Franchise struct {
	ID        string
	Name      string
	Address   string
	CNPJ      string
	Phone     string
	Score     int
	UserID    *string // Franqueado proprietário
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (f *Franchise) IsDeleted() bool {
	return f.DeletedAt != nil
}

// IsOwnedBy verifica se o usuário é o proprietário da franquia
func (f *Franchise) IsOwnedBy(userID string) bool {
	return f.UserID != nil && *f.UserID == userID
}
