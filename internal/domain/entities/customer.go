package entities

import "time"

// Customer representa um cliente atendido por uma franquia
type Customer struct {
	ID          string
	Name        string
	Address     string
	CNPJ        string
	Phone       string
	FranchiseID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func (c *Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}
