package dto

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é usado pelas rotas de status
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponseI18n cria uma resposta de erro com título e detalhe traduzidos
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detail string, status int) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3333"
	}

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: problem}
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		T(c, "error.validation.detail"),
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		T(c, "error.internal.detail"),
		http.StatusInternalServerError,
	)
}

// Abort escreve o problem document e interrompe a cadeia de handlers
func Abort(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// PageQuery são os parâmetros de paginação aceitos por todas as listagens
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

func (q PageQuery) pagination() repositories.Pagination {
	return repositories.Pagination{Page: q.Page, PageSize: q.PageSize}
}

// DeletedQuery seleciona registros ativos (FALSE, padrão) ou removidos (TRUE)
type DeletedQuery struct {
	Deleted string `form:"deleted" binding:"omitempty,oneof=TRUE FALSE true false"`
}

func (q DeletedQuery) deleted() bool {
	return strings.EqualFold(q.Deleted, "TRUE")
}
