package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	input := func(email string) services.CreateUserInput {
		return services.CreateUserInput{
			Name:            "Nova Conta",
			Email:           email,
			Password:        "Senha@123",
			ConfirmPassword: "Senha@123",
			CPF:             "98765432100",
			Address:         "Rua Nova, 1",
			Phone:           "11900001111",
		}
	}

	Describe("CreateUser", func() {
		DescribeTable("atribui o papel conforme o papel do criador",
			func(creator, expected entities.Role) {
				caller := e.user("criador@hyperlocal.com", creator, nil)

				user, err := e.userService.CreateUser(e.ctx, caller, input("nova@hyperlocal.com"))
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Role).To(Equal(expected))
				Expect(*user.OwnerID).To(Equal(caller.ID))
			},
			Entry("FRANCHISEE cria EMPLOYEE", entities.RoleFranchisee, entities.RoleEmployee),
			Entry("OPERATOR cria FRANCHISEE", entities.RoleOperator, entities.RoleFranchisee),
			Entry("MANAGER cria EMPLOYEE", entities.RoleManager, entities.RoleEmployee),
		)

		It("proíbe funcionários de criar contas", func() {
			caller := e.user("func@hyperlocal.com", entities.RoleEmployee, nil)
			_, err := e.userService.CreateUser(e.ctx, caller, input("nova@hyperlocal.com"))
			Expect(err).To(MatchError(errors.ErrRoleRequired))
		})

		It("permite ao MANAGER escolher o papel", func() {
			caller := e.user("gerente@hyperlocal.com", entities.RoleManager, nil)
			role := entities.RoleOperator
			in := input("op@hyperlocal.com")
			in.Role = &role

			user, err := e.userService.CreateUser(e.ctx, caller, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleOperator))
		})

		It("recusa a escolha de papel de quem não é MANAGER", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			role := entities.RoleManager
			in := input("nova@hyperlocal.com")
			in.Role = &role

			_, err := e.userService.CreateUser(e.ctx, caller, in)
			Expect(err).To(MatchError(errors.ErrRoleRequired))
		})

		It("rejeita confirmação divergente sem gravar nada", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			in := input("nova@hyperlocal.com")
			in.ConfirmPassword = "Outra@123"

			_, err := e.userService.CreateUser(e.ctx, caller, in)
			Expect(err).To(MatchError(errors.ErrPasswordMismatch))
			Expect(errors.KindOf(err)).To(Equal(errors.KindBadRequest))

			found, err := e.users.FindByEmail(e.ctx, "nova@hyperlocal.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("guarda apenas o hash da senha", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			user, err := e.userService.CreateUser(e.ctx, caller, input("nova@hyperlocal.com"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.PasswordHash).NotTo(Equal("Senha@123"))
			Expect(e.hasher.Compare(user.PasswordHash, "Senha@123")).To(BeTrue())
		})

		It("rejeita email duplicado", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			_, err := e.userService.CreateUser(e.ctx, caller, input("op@hyperlocal.com"))
			Expect(err).To(MatchError(errors.ErrAlreadyExists))
		})
	})

	Describe("ListUsers", func() {
		It("proíbe funcionários", func() {
			caller := e.user("func@hyperlocal.com", entities.RoleEmployee, nil)
			_, err := e.userService.ListUsers(e.ctx, caller, repositories.UserFilters{})
			Expect(err).To(MatchError(errors.ErrRoleForbidden))
		})

		It("filtra por papel", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
			role := entities.RoleFranchisee

			users, err := e.userService.ListUsers(e.ctx, caller, repositories.UserFilters{Role: &role})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Email.String()).To(Equal("dono@hyperlocal.com"))
		})
	})

	Describe("UpdateUser", func() {
		It("aplica apenas os campos informados", func() {
			user := e.user("ana@hyperlocal.com", entities.RoleFranchisee, nil)
			name := "Ana Maria"

			updated, err := e.userService.UpdateUser(e.ctx, user, user.ID, services.UpdateUserInput{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Ana Maria"))
			Expect(updated.Phone).To(Equal(user.Phone))
			Expect(updated.Email.String()).To(Equal("ana@hyperlocal.com"))
		})

		It("impede alterar outro usuário", func() {
			user := e.user("ana@hyperlocal.com", entities.RoleFranchisee, nil)
			other := e.user("bia@hyperlocal.com", entities.RoleFranchisee, nil)
			name := "Invasor"

			_, err := e.userService.UpdateUser(e.ctx, user, other.ID, services.UpdateUserInput{Name: &name})
			Expect(err).To(MatchError(errors.ErrOutOfScope))
		})
	})

	Describe("UpdatePassword", func() {
		It("exige a senha atual", func() {
			user := e.user("ana@hyperlocal.com", entities.RoleFranchisee, nil)
			err := e.userService.UpdatePassword(e.ctx, user, user.ID, services.UpdatePasswordInput{
				CurrentPassword: "Errada@123",
				Password:        "Nova@1234",
				ConfirmPassword: "Nova@1234",
			})
			Expect(err).To(MatchError(errors.ErrInvalidPassword))
		})

		It("troca a senha", func() {
			user := e.user("ana@hyperlocal.com", entities.RoleFranchisee, nil)
			err := e.userService.UpdatePassword(e.ctx, user, user.ID, services.UpdatePasswordInput{
				CurrentPassword: "Senha@123",
				Password:        "Nova@1234",
				ConfirmPassword: "Nova@1234",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = e.authService.SignIn(e.ctx, "ana@hyperlocal.com", "Nova@1234")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("UpdateUserRole", func() {
		It("rejeita papel desconhecido", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			user := e.user("ana@hyperlocal.com", entities.RoleEmployee, nil)

			_, err := e.userService.UpdateUserRole(e.ctx, caller, user.ID, "ADMIN")
			Expect(err).To(MatchError(errors.ErrInvalidRole))
		})

		It("aceita papel em minúsculas", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			user := e.user("ana@hyperlocal.com", entities.RoleEmployee, nil)

			updated, err := e.userService.UpdateUserRole(e.ctx, caller, user.ID, "franchisee")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleFranchisee))
		})
	})

	Describe("DeleteUser", func() {
		It("libera a franquia do franqueado removido", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			owner := e.user("dono@hyperlocal.com", entities.RoleFranchisee, nil)
			franchise := e.franchise("Centro", owner)

			Expect(e.userService.DeleteUser(e.ctx, caller, owner.ID)).To(Succeed())

			stored, err := e.franchises.FindByID(e.ctx, franchise.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.UserID).To(BeNil())

			user, err := e.userService.GetUser(e.ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsDeleted()).To(BeTrue())
		})

		It("retorna NotFound para usuário inexistente", func() {
			caller := e.user("op@hyperlocal.com", entities.RoleOperator, nil)
			err := e.userService.DeleteUser(e.ctx, caller, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})
})
