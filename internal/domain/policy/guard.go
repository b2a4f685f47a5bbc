// Package policy concentra as regras de autorização por papel.
package policy

import (
	"strings"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
)

// RequireRole falha com ErrRoleRequired quando actual não está em allowed
func RequireRole(actual entities.Role, allowed ...entities.Role) error {
	for _, role := range allowed {
		if actual == role {
			return nil
		}
	}
	return errors.ErrRoleRequired.With(map[string]interface{}{
		"Roles": joinRoles(allowed, " ou "),
	})
}

// ForbidRole falha com ErrRoleForbidden quando actual é exatamente o papel proibido
func ForbidRole(actual, forbidden entities.Role) error {
	if actual == forbidden {
		return errors.ErrRoleForbidden.With(map[string]interface{}{
			"Role": forbidden.String(),
		})
	}
	return nil
}

// HasRole é a versão booleana de RequireRole, para ramificações sem erro
func HasRole(actual entities.Role, roles ...entities.Role) bool {
	return RequireRole(actual, roles...) == nil
}

func joinRoles(roles []entities.Role, sep string) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, sep)
}
