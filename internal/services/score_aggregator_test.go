package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

var _ = Describe("ScoreAggregator", func() {
	var (
		e         *env
		seller    *entities.User
		franchise *entities.Franchise
		customer  *entities.Customer
	)

	BeforeEach(func() {
		e = newEnv()
		owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		seller = e.user("vendedor@hyperlocal.com", entities.RoleEmployee, owner)
		franchise = e.franchise("Centro", owner)
		customer = e.customer("Padaria", franchise)
	})

	It("soma os scores dos produtos vendidos", func() {
		for _, score := range []int{4, 7, 10} {
			e.sale(customer, e.product("Produto", score), seller)
		}

		score, err := e.scores.Recalculate(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(21))

		stored, err := e.franchises.FindByID(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Score).To(Equal(21))
	})

	It("conta cada venda do mesmo produto", func() {
		agenda := e.product("Agenda", 5)
		for i := 0; i < 3; i++ {
			e.sale(customer, agenda, seller)
		}

		score, err := e.scores.Compute(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(15))
	})

	It("retorna zero para franquia sem vendas", func() {
		score, err := e.scores.Recalculate(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(BeZero())
	})

	It("ignora vendas removidas", func() {
		e.sale(customer, e.product("Agenda", 10), seller)
		removed := e.sale(customer, e.product("Caixa", 8), seller)
		Expect(e.sales.SoftDelete(e.ctx, removed.ID)).To(Succeed())

		score, err := e.scores.Compute(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(10))
	})

	It("não mistura vendas de outras franquias", func() {
		other := e.franchise("Norte", nil)
		e.sale(e.customer("Mercado", other), e.product("Agenda", 30), seller)
		e.sale(customer, e.product("Caixa", 2), seller)

		score, err := e.scores.Compute(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(2))
	})

	It("é idempotente", func() {
		e.sale(customer, e.product("Agenda", 9), seller)

		first, err := e.scores.Recalculate(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		second, err := e.scores.Recalculate(e.ctx, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})
})
