package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string          `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(50);not null"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	Role         string          `gorm:"type:varchar(20);not null;index"`
	CPF          string          `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	Address      string          `gorm:"type:varchar(255);not null"`
	Phone        string          `gorm:"type:varchar(20);not null"`
	OwnerID      *string         `gorm:"type:uuid;index"`
	Franchise    *FranchiseModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Sales        []SaleModel     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    int64           `gorm:"autoCreateTime;index"`
	UpdatedAt    int64           `gorm:"autoUpdateTime"`
	DeletedAt    *int64          `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// FranchiseModel é o model GORM para franquias
type FranchiseModel struct {
	ID        string          `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(50);not null"`
	Address   string          `gorm:"type:varchar(250);not null"`
	CNPJ      string          `gorm:"column:cnpj;type:varchar(18);uniqueIndex;not null"`
	Phone     string          `gorm:"type:varchar(20);not null"`
	Score     int             `gorm:"not null;default:0;index"`
	UserID    *string         `gorm:"type:uuid;uniqueIndex"` // Um franqueado possui no máximo uma franquia
	Customers []CustomerModel `gorm:"foreignKey:FranchiseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Sales     []SaleModel     `gorm:"foreignKey:FranchiseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Tickets   []TicketModel   `gorm:"foreignKey:FranchiseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt int64           `gorm:"autoCreateTime"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`
	DeletedAt *int64          `gorm:"index"`
}

func (FranchiseModel) TableName() string {
	return "franchises"
}

// CustomerModel é o model GORM para clientes
type CustomerModel struct {
	ID          string      `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(50);not null"`
	Address     string      `gorm:"type:varchar(250);not null"`
	CNPJ        string      `gorm:"column:cnpj;type:varchar(18);uniqueIndex;not null"`
	Phone       string      `gorm:"type:varchar(20);not null"`
	FranchiseID string      `gorm:"type:uuid;not null;index"`
	Sales       []SaleModel `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   int64       `gorm:"autoCreateTime"`
	UpdatedAt   int64       `gorm:"autoUpdateTime"`
	DeletedAt   *int64      `gorm:"index"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID          string      `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(50);not null"`
	Description string      `gorm:"type:varchar(100);not null"`
	Plan        string      `gorm:"type:varchar(30);not null;index"`
	Score       int         `gorm:"not null"`
	Sales       []SaleModel `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   int64       `gorm:"autoCreateTime"`
	UpdatedAt   int64       `gorm:"autoUpdateTime"`
	DeletedAt   *int64      `gorm:"index"`
}

func (ProductModel) TableName() string {
	return "products"
}

// SaleModel é o model GORM para vendas
type SaleModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Description *string `gorm:"type:varchar(255)"`
	CustomerID  string  `gorm:"type:uuid;not null;index"`
	FranchiseID string  `gorm:"type:uuid;not null;index"`
	ProductID   string  `gorm:"type:uuid;not null;index"`
	UserID      string  `gorm:"type:uuid;not null;index"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
	DeletedAt   *int64  `gorm:"index"`
}

func (SaleModel) TableName() string {
	return "sales"
}

// TicketModel é o model GORM para tickets
type TicketModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	FranchiseID string `gorm:"type:uuid;not null;index"`
	UserID      string `gorm:"type:uuid;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
	DeletedAt   *int64 `gorm:"index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// IDs são gerados na aplicação para não depender de gen_random_uuid()

func (m *UserModel) BeforeCreate(*gorm.DB) error      { m.ID = ensureID(m.ID); return nil }
func (m *FranchiseModel) BeforeCreate(*gorm.DB) error { m.ID = ensureID(m.ID); return nil }
func (m *CustomerModel) BeforeCreate(*gorm.DB) error  { m.ID = ensureID(m.ID); return nil }
func (m *ProductModel) BeforeCreate(*gorm.DB) error   { m.ID = ensureID(m.ID); return nil }
func (m *SaleModel) BeforeCreate(*gorm.DB) error      { m.ID = ensureID(m.ID); return nil }
func (m *TicketModel) BeforeCreate(*gorm.DB) error    { m.ID = ensureID(m.ID); return nil }

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// AllModels lista os models na ordem de migração
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&FranchiseModel{},
		&ProductModel{},
		&CustomerModel{},
		&SaleModel{},
		&TicketModel{},
	}
}
