package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		e    *env
		user *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		user = e.user("ana@hyperlocal.com", entities.RoleFranchisee, nil)
	})

	Describe("SignIn", func() {
		It("emite um token para credenciais corretas", func() {
			token, err := e.authService.SignIn(e.ctx, " ANA@hyperlocal.com ", "Senha@123")
			Expect(err).NotTo(HaveOccurred())

			claims, err := e.tokens.Parse(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(user.ID))
			Expect(claims.Role).To(Equal("FRANCHISEE"))
		})

		DescribeTable("rejeita credenciais inválidas",
			func(email, password string) {
				_, err := e.authService.SignIn(e.ctx, email, password)
				Expect(err).To(MatchError(errors.ErrInvalidCredentials))
				Expect(errors.KindOf(err)).To(Equal(errors.KindBadRequest))
			},
			Entry("senha errada", "ana@hyperlocal.com", "Errada@123"),
			Entry("email desconhecido", "ninguem@hyperlocal.com", "Senha@123"),
		)

		It("rejeita usuário removido", func() {
			Expect(e.users.SoftDelete(e.ctx, user.ID)).To(Succeed())
			_, err := e.authService.SignIn(e.ctx, "ana@hyperlocal.com", "Senha@123")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		It("resolve o usuário do token", func() {
			token, err := e.authService.SignIn(e.ctx, "ana@hyperlocal.com", "Senha@123")
			Expect(err).NotTo(HaveOccurred())

			caller, err := e.authService.Authenticate(e.ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(caller.ID).To(Equal(user.ID))
		})

		It("rejeita token inválido", func() {
			_, err := e.authService.Authenticate(e.ctx, "token-invalido")
			Expect(err).To(MatchError(errors.ErrUnauthenticated))
		})

		It("rejeita token de usuário removido", func() {
			token, err := e.authService.SignIn(e.ctx, "ana@hyperlocal.com", "Senha@123")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.users.SoftDelete(e.ctx, user.ID)).To(Succeed())

			_, err = e.authService.Authenticate(e.ctx, token)
			Expect(err).To(MatchError(errors.ErrUnauthenticated))
		})
	})

	Describe("SeedManager", func() {
		It("cria a conta MANAGER apenas uma vez", func() {
			input := services.SeedManagerInput{Name: "Gerente", Email: "gerente@hyperlocal.com", Password: "Gerente@123"}

			created, err := e.authService.SeedManager(e.ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			created, err = e.authService.SeedManager(e.ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			manager, err := e.users.FindByEmail(e.ctx, "gerente@hyperlocal.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(manager.Role).To(Equal(entities.RoleManager))
			Expect(manager.PasswordHash).NotTo(Equal("Gerente@123"))
		})
	})
})
