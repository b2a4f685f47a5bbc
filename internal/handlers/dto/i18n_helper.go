package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/i18n"
)

// T traduz uma mensagem no idioma da requisição.
// Uso: dto.T(c, "error.invalid_plan", map[string]interface{}{"Plans": "AVEC"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, ok := c.Get(middleware.LanguageContextKey)
	if !ok {
		return ""
	}
	langStr, _ := lang.(string)
	return langStr
}
