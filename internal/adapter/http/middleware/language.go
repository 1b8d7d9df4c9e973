package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/alipouryousefi/task-manager-back/pkg/translator"
)

// LanguageMiddleware stores the caller's language on the context so error
// responses can be translated downstream.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple: raw header value, fallback to en.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
