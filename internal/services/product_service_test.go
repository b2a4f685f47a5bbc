package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

var _ = Describe("ProductService", func() {
	var (
		e       *env
		manager *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		manager = e.user("gerente@hyperlocal.com", entities.RoleManager, nil)
	})

	DescribeTable("valida plano e score",
		func(plan string, score int, expected error) {
			_, err := e.productService.CreateProduct(e.ctx, manager, services.CreateProductInput{
				Name: "Agenda", Description: "Agenda online", Plan: plan, Score: score,
			})
			if expected == nil {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(err).To(MatchError(expected))
		},
		Entry("válido", "AVEC", 10, nil),
		Entry("plano em minúsculas", "crossx", 1, nil),
		Entry("plano desconhecido", "GOLD", 10, errors.ErrInvalidPlan),
		Entry("score abaixo do mínimo", "AVEC", 0, errors.ErrInvalidScore),
		Entry("score acima do máximo", "AVEC", 31, errors.ErrInvalidScore),
	)

	It("exige a operação da rede para criar", func() {
		owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		_, err := e.productService.CreateProduct(e.ctx, owner, services.CreateProductInput{Name: "Agenda", Plan: "AVEC", Score: 5})
		Expect(err).To(MatchError(errors.ErrRoleRequired))
	})

	It("altera o plano", func() {
		product := e.product("Agenda", 5)
		updated, err := e.productService.UpdateProductPlan(e.ctx, manager, product.ID, "SALAOVIP")
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Plan).To(Equal(entities.PlanSalaoVIP))
	})

	It("não remove produto com vendas", func() {
		owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		product := e.product("Agenda", 5)
		e.sale(e.customer("Padaria", e.franchise("Centro", owner)), product, owner)

		err := e.productService.DeleteProduct(e.ctx, manager, product.ID)
		Expect(err).To(MatchError(errors.ErrReferenceViolation))
	})

	It("remove produto sem vendas", func() {
		product := e.product("Agenda", 5)
		Expect(e.productService.DeleteProduct(e.ctx, manager, product.ID)).To(Succeed())

		_, err := e.productService.GetProduct(e.ctx, manager, product.ID)
		Expect(err).To(MatchError(errors.ErrProductNotFound))
	})
})
