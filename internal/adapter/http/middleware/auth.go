package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
	"github.com/alipouryousefi/task-manager-back/pkg/apierrors"
)

const userCtxKey = "user"

// AuthMiddleware verifies bearer tokens and resolves the embedded subject
// to a stored user before any protected handler runs.
type AuthMiddleware struct {
	userRepository ports.UserRepository
	jwtSecret      []byte
}

func NewAuthMiddleware(userRepository ports.UserRepository, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{userRepository: userRepository, jwtSecret: []byte(jwtSecret)}
}

// Protect rejects the request with 401 unless it carries a valid bearer
// token whose subject resolves to an existing user. The resolved identity,
// with the password hash blanked, is attached to the request context.
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
			)
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
			)
			return
		}

		user, err := m.userRepository.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
				)
				return
			}

			zap.L().Error("failed to resolve token subject", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
			return
		}

		// The hash never travels further than this point.
		user.Password = ""
		c.Set(userCtxKey, user)
		c.Next()
	}
}

// AdminOnly runs after Protect and rejects non-admin callers with 403.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok || !caller.IsAdmin() {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgAccessDenied, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

// GetCaller returns the identity attached by Protect.
func GetCaller(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userCtxKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
