package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/i18n"
)

type problemKind struct {
	status   int
	path     string
	titleKey string
}

var problemKinds = map[errors.Kind]problemKind{
	errors.KindNotFound:            {http.StatusNotFound, "/problems/not-found", "error.not_found.title"},
	errors.KindBadRequest:          {http.StatusBadRequest, "/problems/bad-request", "error.bad_request.title"},
	errors.KindUnauthorized:        {http.StatusUnauthorized, "/problems/unauthorized", "error.unauthorized.title"},
	errors.KindUnprocessableEntity: {http.StatusUnprocessableEntity, "/problems/unprocessable-entity", "error.unprocessable.title"},
}

// StatusFor retorna o status HTTP de um erro: DomainError pelo Kind, demais 500
func StatusFor(err error) int {
	if kind, ok := problemKinds[errors.KindOf(err)]; ok {
		return kind.status
	}
	return http.StatusInternalServerError
}

// ErrorResponseFor converte um erro de domínio em problem document traduzido
func ErrorResponseFor(c *gin.Context, err error) ErrorResponse {
	var de *errors.DomainError
	if !stderrors.As(err, &de) {
		return InternalErrorResponseI18n(c)
	}
	kind, ok := problemKinds[de.Kind]
	if !ok {
		return InternalErrorResponseI18n(c)
	}
	return NewErrorResponseI18n(c, kind.path, kind.titleKey, T(c, de.Key, de.Params), kind.status)
}

// AbortWithError responde com o problem document do erro. Erros inesperados
// são logados e o detalhe não é exposto.
func AbortWithError(c *gin.Context, err error) {
	if StatusFor(err) == http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error("request failed",
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	Abort(c, ErrorResponseFor(c, err))
}

// AbortWithBindingError responde 400 listando os campos inválidos
func AbortWithBindingError(c *gin.Context, err error) {
	Abort(c, ValidationErrorResponseI18n(c, ValidationErrors(c, err)))
}

// ValidationErrors traduz os erros do validator; JSON malformado não gera itens
func ValidationErrors(c *gin.Context, err error) []ValidationError {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return nil
	}

	value, _ := c.Get(middleware.I18nServiceContextKey)
	service, _ := value.(*i18n.Service)
	result := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		key := "validation." + fe.Tag()
		if service == nil || !service.Has(key) {
			key = "validation.default"
		}
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: T(c, key, map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}),
		})
	}
	return result
}
