package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

var _ = Describe("TicketService", func() {
	var (
		e          *env
		franchisee *entities.User
		operator   *entities.User
		franchise  *entities.Franchise
	)

	BeforeEach(func() {
		e = newEnv()
		franchisee = e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		operator = e.user("op@hyperlocal.com", entities.RoleOperator, nil)
		franchise = e.franchise("Centro", franchisee)
	})

	It("abre o chamado na franquia do franqueado e publica o evento", func() {
		ticket, err := e.ticketService.CreateTicket(e.ctx, franchisee, "Impressora parada")
		Expect(err).NotTo(HaveOccurred())
		Expect(ticket.Status).To(Equal(entities.TicketOpen))
		Expect(ticket.FranchiseID).To(Equal(franchise.ID))

		Expect(e.publisher.events).To(HaveLen(1))
		Expect(e.publisher.events[0].Type).To(Equal(ports.TicketCreated))
		Expect(e.publisher.events[0].Ticket.ID).To(Equal(ticket.ID))
	})

	It("franqueado sem franquia não abre chamado", func() {
		orphan := e.user("sem@hyperlocal.com", entities.RoleFranchisee, nil)
		_, err := e.ticketService.CreateTicket(e.ctx, orphan, "Ajuda")
		Expect(err).To(MatchError(errors.ErrFranchiseNotFound))
		Expect(e.publisher.events).To(BeEmpty())
	})

	It("a operação da rede move o status", func() {
		ticket, err := e.ticketService.CreateTicket(e.ctx, franchisee, "Impressora parada")
		Expect(err).NotTo(HaveOccurred())

		updated, err := e.ticketService.UpdateTicketStatus(e.ctx, operator, ticket.ID, entities.TicketInProgress)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal(entities.TicketInProgress))
		Expect(e.publisher.events[len(e.publisher.events)-1].Type).To(Equal(ports.TicketUpdated))
	})

	It("rejeita status desconhecido", func() {
		ticket, err := e.ticketService.CreateTicket(e.ctx, franchisee, "Impressora parada")
		Expect(err).NotTo(HaveOccurred())

		_, err = e.ticketService.UpdateTicketStatus(e.ctx, operator, ticket.ID, entities.TicketStatus("DONE"))
		Expect(err).To(MatchError(errors.ErrInvalidStatus))
	})

	It("o franqueado não move o status", func() {
		ticket, err := e.ticketService.CreateTicket(e.ctx, franchisee, "Impressora parada")
		Expect(err).NotTo(HaveOccurred())

		_, err = e.ticketService.UpdateTicketStatus(e.ctx, franchisee, ticket.ID, entities.TicketClosed)
		Expect(err).To(MatchError(errors.ErrRoleRequired))
	})

	It("lista por status dentro do escopo", func() {
		_, err := e.ticketService.CreateTicket(e.ctx, franchisee, "Impressora parada")
		Expect(err).NotTo(HaveOccurred())
		closed := entities.TicketClosed

		list, err := e.ticketService.ListTickets(e.ctx, franchisee, repositories.TicketFilters{Status: &closed})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(BeEmpty())

		list, err = e.ticketService.ListTickets(e.ctx, franchisee, repositories.TicketFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
	})

	It("remoção publica o evento", func() {
		ticket, err := e.ticketService.CreateTicket(e.ctx, franchisee, "Impressora parada")
		Expect(err).NotTo(HaveOccurred())

		Expect(e.ticketService.DeleteTicket(e.ctx, operator, ticket.ID)).To(Succeed())
		Expect(e.publisher.events[len(e.publisher.events)-1].Type).To(Equal(ports.TicketDeleted))
	})
})
