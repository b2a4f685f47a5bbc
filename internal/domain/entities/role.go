package entities

import "strings"

// Role representa o papel de um usuário na rede de franquias
type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleFranchisee Role = "FRANCHISEE"
	RoleOperator   Role = "OPERATOR"
	RoleManager    Role = "MANAGER"
)

// Roles retorna todos os papéis válidos, do menor para o maior
func Roles() []Role {
	return []Role{RoleEmployee, RoleFranchisee, RoleOperator, RoleManager}
}

// createdRoles mapeia o papel de quem cria a conta para o papel atribuído à nova conta
var createdRoles = map[Role]Role{
	RoleEmployee:   RoleEmployee,
	RoleFranchisee: RoleEmployee,
	RoleOperator:   RoleFranchisee,
	RoleManager:    RoleEmployee,
}

// DefaultCreatedRole é usado quando o papel do criador não está na tabela
const DefaultCreatedRole = RoleEmployee

// CreatedRole retorna o papel que uma conta criada por este papel recebe
func (r Role) CreatedRole() Role {
	if role, ok := createdRoles[r]; ok {
		return role
	}
	return DefaultCreatedRole
}

// IsValid verifica se o papel é conhecido
func (r Role) IsValid() bool {
	for _, role := range Roles() {
		if r == role {
			return true
		}
	}
	return false
}

// IsNetworkStaff indica papéis que enxergam toda a rede (sem escopo de franquia)
func (r Role) IsNetworkStaff() bool {
	return r == RoleOperator || r == RoleManager
}

// ParseRole normaliza e valida um papel vindo de fora
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	return role, role.IsValid()
}

func (r Role) String() string {
	return string(r)
}
