package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
)

// pathID lê um parâmetro de rota que precisa ser UUID. Em caso de erro a
// resposta 400 já foi escrita.
func pathID(c *gin.Context, name string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		dto.AbortWithError(c, errors.ErrInvalidID)
		return "", false
	}
	return id.String(), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		dto.AbortWithBindingError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, query interface{}) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		dto.AbortWithBindingError(c, err)
		return false
	}
	return true
}
