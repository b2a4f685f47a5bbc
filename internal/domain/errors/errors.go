package errors

import (
	"errors"
	"fmt"
)

// Kind classifica um erro de negócio. A camada HTTP traduz cada Kind para um status.
type Kind string

const (
	KindNotFound            Kind = "NotFoundError"
	KindBadRequest          Kind = "BadRequestError"
	KindUnauthorized        Kind = "UnauthorizedError"
	KindUnprocessableEntity Kind = "UnprocessableEntityError"
)

// DomainError representa um erro de domínio com contexto adicional.
// Key é o message ID usado pelo i18n (internal/infrastructure/i18n/locales/*.json).
type DomainError struct {
	Kind   Kind
	Key    string
	Params map[string]interface{}
	Err    error
}

func (e *DomainError) Error() string {
	msg := string(e.Kind) + ": " + e.Key
	if len(e.Params) > 0 {
		msg += fmt.Sprintf(" %v", e.Params)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is compara pela chave, permitindo errors.Is(err, ErrUserNotFound) mesmo com parâmetros
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Key == e.Key
}

// With retorna uma cópia do erro com parâmetros de interpolação
func (e *DomainError) With(params map[string]interface{}) *DomainError {
	clone := *e
	clone.Params = params
	return &clone
}

// Wrap retorna uma cópia do erro encadeando a causa
func (e *DomainError) Wrap(err error) *DomainError {
	clone := *e
	clone.Err = err
	return &clone
}

func newError(kind Kind, key string) *DomainError {
	return &DomainError{Kind: kind, Key: key}
}

// KindOf retorna o Kind do erro, ou "" se não for um DomainError
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// Not found
var (
	ErrUserNotFound      = newError(KindNotFound, "error.user_not_found")
	ErrFranchiseNotFound = newError(KindNotFound, "error.franchise_not_found")
	ErrCustomerNotFound  = newError(KindNotFound, "error.customer_not_found")
	ErrProductNotFound   = newError(KindNotFound, "error.product_not_found")
	ErrSaleNotFound      = newError(KindNotFound, "error.sale_not_found")
	ErrTicketNotFound    = newError(KindNotFound, "error.ticket_not_found")
)

// Bad request
var (
	ErrInvalidCredentials = newError(KindBadRequest, "error.invalid_credentials")
	ErrInvalidPassword    = newError(KindBadRequest, "error.invalid_password")
	ErrPasswordMismatch   = newError(KindBadRequest, "error.password_mismatch")
	ErrInvalidPlan        = newError(KindBadRequest, "error.invalid_plan")
	ErrInvalidRole        = newError(KindBadRequest, "error.invalid_role")
	ErrInvalidStatus      = newError(KindBadRequest, "error.invalid_ticket_status")
	ErrInvalidEmail       = newError(KindBadRequest, "error.invalid_email")
	ErrOwnerNotFranchisee = newError(KindBadRequest, "error.owner_not_franchisee")
	ErrSellerRole         = newError(KindBadRequest, "error.seller_role")
	ErrInactiveReference  = newError(KindBadRequest, "error.inactive_reference")
	ErrInvalidID          = newError(KindBadRequest, "error.invalid_id")
	ErrInvalidScore       = newError(KindBadRequest, "error.invalid_score")
)

// Unauthorized
var (
	ErrUnauthenticated = newError(KindUnauthorized, "error.unauthenticated")
	ErrRoleRequired    = newError(KindUnauthorized, "error.role_required")
	ErrRoleForbidden   = newError(KindUnauthorized, "error.role_forbidden")
	ErrOutOfScope      = newError(KindUnauthorized, "error.out_of_scope")
)

// Unprocessable entity
var (
	ErrAlreadyExists        = newError(KindUnprocessableEntity, "error.already_exists")
	ErrReferenceViolation   = newError(KindUnprocessableEntity, "error.reference_violation")
	ErrAlreadyOwnsFranchise = newError(KindUnprocessableEntity, "error.already_owns_franchise")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation    = "/problems/validation-error"
	ProblemTypeNotFound      = "/problems/not-found"
	ProblemTypeUnprocessable = "/problems/unprocessable-entity"
	ProblemTypeUnauthorized  = "/problems/unauthorized"
	ProblemTypeInternal      = "/problems/internal-error"
	ProblemTypeBadRequest    = "/problems/bad-request"
)
