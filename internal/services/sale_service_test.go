package services_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/logging"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

const missingID = "00000000-0000-0000-0000-000000000000"

// brokenScores falha ao gravar o score, simulando queda após a escrita da venda
type brokenScores struct {
	repositories.FranchiseRepository
}

func (brokenScores) UpdateScore(context.Context, string, int) error {
	return stderrors.New("connection reset")
}

var _ = Describe("SaleService", func() {
	var (
		e          *env
		franchisee *entities.User
		employee   *entities.User
		franchise  *entities.Franchise
		customer   *entities.Customer
		product    *entities.Product
	)

	BeforeEach(func() {
		e = newEnv()
		franchisee = e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		employee = e.user("func@hyperlocal.com", entities.RoleEmployee, franchisee)
		franchise = e.franchise("Centro", franchisee)
		customer = e.customer("Padaria", franchise)
		product = e.product("Agenda", 6)
	})

	saleInput := func() services.CreateSaleInput {
		return services.CreateSaleInput{
			CustomerID:  customer.ID,
			FranchiseID: franchise.ID,
			ProductID:   product.ID,
		}
	}

	It("registra a venda em nome do chamador e atualiza o score", func() {
		sale, err := e.saleService.CreateSale(e.ctx, employee, saleInput())
		Expect(err).NotTo(HaveOccurred())
		Expect(sale.UserID).To(Equal(employee.ID))

		stored, err := e.franchises.FindByID(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Score).To(Equal(6))
	})

	It("retorna NotFound para produto inexistente sem gravar a venda", func() {
		in := saleInput()
		in.ProductID = missingID

		_, err := e.saleService.CreateSale(e.ctx, employee, in)
		Expect(err).To(MatchError(errors.ErrProductNotFound))
		Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))

		sales, err := e.sales.List(e.ctx, repositories.SaleFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(sales).To(BeEmpty())
	})

	DescribeTable("valida as referências",
		func(mutate func(*services.CreateSaleInput), expected error) {
			in := saleInput()
			mutate(&in)
			_, err := e.saleService.CreateSale(e.ctx, employee, in)
			Expect(err).To(MatchError(expected))
		},
		Entry("cliente inexistente", func(in *services.CreateSaleInput) { in.CustomerID = missingID }, errors.ErrCustomerNotFound),
		Entry("franquia inexistente", func(in *services.CreateSaleInput) { in.FranchiseID = missingID }, errors.ErrFranchiseNotFound),
		Entry("vendedor inexistente", func(in *services.CreateSaleInput) { in.UserID = missingID }, errors.ErrUserNotFound),
	)

	It("recusa vendedor com papel que não vende", func() {
		operator := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
		in := saleInput()
		in.UserID = operator.ID

		_, err := e.saleService.CreateSale(e.ctx, employee, in)
		Expect(err).To(MatchError(errors.ErrSellerRole))
	})

	It("recusa vendedor de outra franquia", func() {
		ownerB := e.user("donob@hyperlocal.com", entities.RoleFranchisee, nil)
		e.franchise("Norte", ownerB)
		in := saleInput()
		in.UserID = ownerB.ID

		_, err := e.saleService.CreateSale(e.ctx, employee, in)
		Expect(err).To(MatchError(errors.ErrOutOfScope))

		sales, err := e.sales.List(e.ctx, repositories.SaleFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(sales).To(BeEmpty())
	})

	It("recusa vendedor sem franquia", func() {
		orphan := e.user("sem@hyperlocal.com", entities.RoleFranchisee, nil)
		in := saleInput()
		in.UserID = orphan.ID

		_, err := e.saleService.CreateSale(e.ctx, employee, in)
		Expect(err).To(MatchError(errors.ErrOutOfScope))
	})

	It("aceita o franqueado como vendedor informado pelo funcionário", func() {
		in := saleInput()
		in.UserID = franchisee.ID

		sale, err := e.saleService.CreateSale(e.ctx, employee, in)
		Expect(err).NotTo(HaveOccurred())
		Expect(sale.UserID).To(Equal(franchisee.ID))
	})

	It("mantém a venda gravada quando o recálculo do score falha", func() {
		log := logging.Discard()
		scores := services.NewScoreAggregator(e.sales, e.products, brokenScores{e.franchises}, 1, log)
		saleService := services.NewSaleService(e.sales, e.users, e.customers, e.franchises, e.products, e.scopes, scores, log)

		sale, err := saleService.CreateSale(e.ctx, employee, saleInput())
		Expect(err).NotTo(HaveOccurred())

		stored, err := e.sales.FindByID(e.ctx, sale.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).NotTo(BeNil())

		operator := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
		Expect(saleService.DeleteSale(e.ctx, operator, sale.ID)).To(Succeed())
	})

	It("recusa venda em franquia fora do escopo", func() {
		other := e.franchise("Norte", nil)
		in := saleInput()
		in.FranchiseID = other.ID
		in.CustomerID = e.customer("Mercado", other).ID

		_, err := e.saleService.CreateSale(e.ctx, employee, in)
		Expect(err).To(MatchError(errors.ErrOutOfScope))
	})

	It("funcionários não listam vendas", func() {
		_, err := e.saleService.ListSales(e.ctx, employee, repositories.SaleFilters{})
		Expect(err).To(MatchError(errors.ErrRoleForbidden))
	})

	It("o franqueado lista apenas as vendas da sua franquia", func() {
		e.sale(customer, product, employee)
		other := e.franchise("Norte", nil)
		e.sale(e.customer("Mercado", other), product, employee)

		sales, err := e.saleService.ListSales(e.ctx, franchisee, repositories.SaleFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(sales).To(HaveLen(1))
		Expect(sales[0].FranchiseID).To(Equal(franchise.ID))
	})

	It("remover a venda recalcula o score", func() {
		operator := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
		sale, err := e.saleService.CreateSale(e.ctx, franchisee, saleInput())
		Expect(err).NotTo(HaveOccurred())

		Expect(e.saleService.DeleteSale(e.ctx, operator, sale.ID)).To(Succeed())

		stored, err := e.franchises.FindByID(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Score).To(BeZero())
	})
})
