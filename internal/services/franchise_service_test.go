package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

var _ = Describe("FranchiseService", func() {
	var (
		e        *env
		operator *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		operator = e.user("op@hyperlocal.com", entities.RoleOperator, nil)
	})

	It("cria franquia sem dono e com score zero", func() {
		franchise, err := e.franchiseSvc.CreateFranchise(e.ctx, operator, services.CreateFranchiseInput{
			Name: "Centro", Address: "Av. Brasil, 1", CNPJ: "11.222.333/0001-81", Phone: "1133334444",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(franchise.UserID).To(BeNil())
		Expect(franchise.Score).To(BeZero())
	})

	It("exige OPERATOR ou MANAGER para criar", func() {
		owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		_, err := e.franchiseSvc.CreateFranchise(e.ctx, owner, services.CreateFranchiseInput{Name: "Centro"})
		Expect(err).To(MatchError(errors.ErrRoleRequired))
	})

	Describe("SetOwner", func() {
		It("vincula um franqueado", func() {
			owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
			franchise := e.franchise("Centro", nil)

			updated, err := e.franchiseSvc.SetOwner(e.ctx, operator, franchise.ID, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.UserID).To(Equal(owner.ID))
		})

		It("recusa usuário que não é franqueado", func() {
			employee := e.user("func@hyperlocal.com", entities.RoleEmployee, nil)
			franchise := e.franchise("Centro", nil)

			_, err := e.franchiseSvc.SetOwner(e.ctx, operator, franchise.ID, employee.ID)
			Expect(err).To(MatchError(errors.ErrOwnerNotFranchisee))
		})

		It("recusa franqueado que já possui franquia", func() {
			owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
			e.franchise("Centro", owner)
			other := e.franchise("Norte", nil)

			_, err := e.franchiseSvc.SetOwner(e.ctx, operator, other.ID, owner.ID)
			Expect(err).To(MatchError(errors.ErrAlreadyOwnsFranchise))
		})
	})

	It("o franqueado enxerga apenas a própria franquia", func() {
		owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		own := e.franchise("Centro", owner)
		other := e.franchise("Norte", nil)

		list, err := e.franchiseSvc.ListFranchises(e.ctx, owner, repositories.FranchiseFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].ID).To(Equal(own.ID))

		_, err = e.franchiseSvc.GetFranchise(e.ctx, owner, other.ID)
		Expect(err).To(MatchError(errors.ErrOutOfScope))
	})

	It("recalcula o score ao atualizar", func() {
		owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		franchise := e.franchise("Centro", owner)
		e.sale(e.customer("Padaria", franchise), e.product("Agenda", 12), owner)
		name := "Centro Novo"

		updated, err := e.franchiseSvc.UpdateFranchise(e.ctx, operator, franchise.ID, services.UpdateFranchiseInput{Name: &name})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("Centro Novo"))
		Expect(updated.Score).To(Equal(12))
		Expect(updated.CNPJ).To(Equal(franchise.CNPJ))
	})

	It("remove com soft delete", func() {
		franchise := e.franchise("Centro", nil)
		Expect(e.franchiseSvc.DeleteFranchise(e.ctx, operator, franchise.ID)).To(Succeed())

		stored, err := e.franchiseSvc.GetFranchise(e.ctx, operator, franchise.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.IsDeleted()).To(BeTrue())
	})
})
