package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

var _ = Describe("ScopeResolver", func() {
	var (
		e          *env
		franchisee *entities.User
		franchise  *entities.Franchise
	)

	BeforeEach(func() {
		e = newEnv()
		franchisee = e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
		franchise = e.franchise("Centro", franchisee)
	})

	DescribeTable("equipe da rede não tem restrição",
		func(role entities.Role) {
			caller := e.user("staff@hyperlocal.com", role, nil)
			scope, err := e.scopes.Resolve(e.ctx, caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(scope).To(Equal(repositories.Unrestricted()))
		},
		Entry("OPERATOR", entities.RoleOperator),
		Entry("MANAGER", entities.RoleManager),
	)

	It("restringe o franqueado à própria franquia", func() {
		scope, err := e.scopes.Resolve(e.ctx, franchisee)
		Expect(err).NotTo(HaveOccurred())
		Expect(scope).To(Equal(repositories.RestrictedTo(franchise.ID)))
	})

	It("restringe o funcionário à franquia de quem o criou", func() {
		employee := e.user("func@hyperlocal.com", entities.RoleEmployee, franchisee)
		scope, err := e.scopes.Resolve(e.ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(scope).To(Equal(repositories.RestrictedTo(franchise.ID)))
	})

	It("fecha o escopo quando não há franquia", func() {
		orphan := e.user("sem@hyperlocal.com", entities.RoleFranchisee, nil)
		scope, err := e.scopes.Resolve(e.ctx, orphan)
		Expect(err).NotTo(HaveOccurred())
		Expect(scope.IsEmpty()).To(BeTrue())

		employee := e.user("func@hyperlocal.com", entities.RoleEmployee, nil)
		scope, err = e.scopes.Resolve(e.ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(scope.IsEmpty()).To(BeTrue())
	})

	It("nega acesso a outra franquia", func() {
		other := e.franchise("Norte", nil)
		err := e.scopes.Authorize(e.ctx, franchisee, other.ID)
		Expect(err).To(MatchError(errors.ErrOutOfScope))
		Expect(e.scopes.Authorize(e.ctx, franchisee, franchise.ID)).To(Succeed())
	})
})
