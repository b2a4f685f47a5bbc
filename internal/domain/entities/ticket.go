package entities

import "time"

// TicketStatus é o estado de atendimento de um ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketClosed     TicketStatus = "CLOSED"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketClosed:
		return true
	}
	return false
}

// Ticket é um chamado aberto por um franqueado para a operação
type Ticket struct {
	ID          string
	Description string
	Status      TicketStatus
	FranchiseID string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
