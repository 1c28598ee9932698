package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/character-api/internal/handlers/middleware"
	"github.com/rafabene/character-api/internal/infrastructure/i18n"
)

// T traduz key no idioma detectado para a requisição.
// Sem serviço i18n no contexto, a própria chave é devolvida.
// Uso: dto.T(c, "error.invalid_id", map[string]any{"ID": raw})
func T(c *gin.Context, key string, params ...map[string]any) string {
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
		return "en"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}
