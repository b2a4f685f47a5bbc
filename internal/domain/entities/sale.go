package entities

import "time"

// Sale representa a venda de um produto a um cliente por uma franquia
type Sale struct {
	ID          string
	Description *string
	CustomerID  string
	FranchiseID string
	ProductID   string
	UserID      string // Quem registrou a venda
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func (s *Sale) IsDeleted() bool {
	return s.DeletedAt != nil
}
