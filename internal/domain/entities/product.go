package entities

import (
	"strings"
	"time"
)

// Plan é o plano (tier) de um produto
type Plan string

const (
	PlanAvec                 Plan = "AVEC"
	PlanAvecGo               Plan = "AVECGO"
	PlanCrossX               Plan = "CROSSX"
	PlanPayments             Plan = "PAYMENTS"
	PlanPlataformaHyperlocal Plan = "PLATAFORMA_HYPERLOCAL"
	PlanSalaoVIP             Plan = "SALAOVIP"
)

const (
	MinProductScore = 1
	MaxProductScore = 30
)

// Plans retorna todos os planos disponíveis
func Plans() []Plan {
	return []Plan{PlanAvec, PlanAvecGo, PlanCrossX, PlanPayments, PlanPlataformaHyperlocal, PlanSalaoVIP}
}

// ParsePlan aceita o plano em qualquer caixa
func ParsePlan(value string) (Plan, bool) {
	plan := Plan(strings.ToUpper(strings.TrimSpace(value)))
	for _, p := range Plans() {
		if p == plan {
			return plan, true
		}
	}
	return plan, false
}

// Product representa um produto oferecido aos franqueados
type Product struct {
	ID          string
	Name        string
	Description string
	Plan        Plan
	Score       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
