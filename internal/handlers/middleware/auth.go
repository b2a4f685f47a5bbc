package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
)

// CallerContextKey guarda o usuário autenticado no contexto do Gin
const CallerContextKey = "caller"

// Authenticator resolve o usuário dono de um bearer token
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// ErrorWriter escreve a resposta de erro e aborta a requisição
type ErrorWriter func(c *gin.Context, err error)

// RequireAuth exige um header "Authorization: Bearer <token>" válido
func RequireAuth(auth Authenticator, writeError ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			writeError(c, errors.ErrUnauthenticated)
			return
		}

		caller, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(CallerContextKey, caller)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Caller retorna o usuário autenticado; nil fora de rotas protegidas
func Caller(c *gin.Context) *entities.User {
	value, ok := c.Get(CallerContextKey)
	if !ok {
		return nil
	}
	caller, _ := value.(*entities.User)
	return caller
}
