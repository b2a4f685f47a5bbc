package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

var _ = Describe("CustomerService", func() {
	var (
		e          *env
		franchisee *entities.User
		employee   *entities.User
		own        *entities.Franchise
		other      *entities.Franchise
	)

	BeforeEach(func() {
		e = newEnv()
		franchisee = e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		employee = e.user("func@hyperlocal.com", entities.RoleEmployee, franchisee)
		own = e.franchise("Centro", franchisee)
		other = e.franchise("Norte", nil)
		e.customer("Padaria", own)
		e.customer("Mercado", other)
	})

	It("o funcionário vê apenas os clientes do seu franqueado", func() {
		list, err := e.customerService.ListCustomers(e.ctx, employee, repositories.CustomerFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Name).To(Equal("Padaria"))
	})

	It("a operação da rede vê todos", func() {
		operator := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
		list, err := e.customerService.ListCustomers(e.ctx, operator, repositories.CustomerFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
	})

	It("sem franquia a listagem vem vazia", func() {
		orphan := e.user("sem@hyperlocal.com", entities.RoleEmployee, nil)
		list, err := e.customerService.ListCustomers(e.ctx, orphan, repositories.CustomerFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(BeEmpty())
	})

	It("não cria cliente em outra franquia", func() {
		_, err := e.customerService.CreateCustomer(e.ctx, franchisee, services.CreateCustomerInput{
			Name: "Farmácia", Address: "Rua A, 1", CNPJ: nextCNPJ(), Phone: "1144445555", FranchiseID: other.ID,
		})
		Expect(err).To(MatchError(errors.ErrOutOfScope))
	})

	It("cria cliente na própria franquia", func() {
		customer, err := e.customerService.CreateCustomer(e.ctx, franchisee, services.CreateCustomerInput{
			Name: "Farmácia", Address: "Rua A, 1", CNPJ: nextCNPJ(), Phone: "1144445555", FranchiseID: own.ID,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(customer.FranchiseID).To(Equal(own.ID))
	})
})
