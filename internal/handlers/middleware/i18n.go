package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma negociado da requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o *i18n.Service usado pelos handlers
	I18nServiceContextKey = "i18n_service"
)

// Language negocia o idioma da requisição e o publica no contexto e no
// header Content-Language. Ordem: ?lang=, Accept-Language, idioma padrão.
func Language(service *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""
		if requested := c.Query("lang"); service.IsLanguageSupported(requested) {
			lang = requested
		}
		if lang == "" {
			lang = negotiateLanguage(service, c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = service.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, service)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

// negotiateLanguage percorre o Accept-Language na ordem enviada. Cada entrada
// casa exatamente, pela base ("en-US" -> "en") ou por uma variante regional
// carregada ("pt" -> "pt-BR"). Pesos q= são ignorados.
func negotiateLanguage(service *i18n.Service, header string) string {
	if header == "" {
		return ""
	}

	supported := service.GetSupportedLanguages()
	for _, entry := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(entry), ";")
		if tag == "" || tag == "*" {
			continue
		}
		if service.IsLanguageSupported(tag) {
			return tag
		}

		base, _, _ := strings.Cut(tag, "-")
		if service.IsLanguageSupported(base) {
			return base
		}
		base = strings.ToLower(base)
		for _, lang := range supported {
			lower := strings.ToLower(lang)
			if lower == base || strings.HasPrefix(lower, base+"-") {
				return lang
			}
		}
	}
	return ""
}
