package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/pkg/translator"
)

const (
	jwtSecret = "test-secret"
	userID    = "507f1f77bcf86cd799439011"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	os.Exit(m.Run())
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *userRepositoryMock) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func signToken(t *testing.T, secret, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(userRepo *userRepositoryMock, adminOnly bool, handler gin.HandlerFunc) *gin.Engine {
	auth := middleware.NewAuthMiddleware(userRepo, jwtSecret)

	r := gin.New()
	group := r.Group("/", middleware.LanguageMiddleware(), auth.Protect())
	if adminOnly {
		group.Use(auth.AdminOnly())
	}
	group.GET("/probe", handler)
	return r
}

func performProbe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtect_RejectsWithoutReachingHandler(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "wrong scheme", authHeader: "Basic abc"},
		{name: "garbage token", authHeader: "Bearer not-a-jwt"},
		{
			name:       "wrong signing key",
			authHeader: "Bearer " + signToken(t, "other-secret", userID, time.Hour),
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, jwtSecret, userID, -time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(userRepositoryMock)
			handlerCalled := false
			r := protectedRouter(userRepo, false, func(c *gin.Context) {
				handlerCalled = true
				c.Status(http.StatusOK)
			})

			w := performProbe(r, tt.authHeader)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.False(t, handlerCalled)
			require.JSONEq(t,
				`{"error": {"code": 401, "message": "Not authorized."}}`,
				w.Body.String(),
			)
		})
	}
}

func TestProtect_UnknownSubjectRejected(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByID", mock.Anything, userID).Return(domain.User{}, domain.ErrUserNotFound).Once()

	r := protectedRouter(userRepo, false, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := performProbe(r, "Bearer "+signToken(t, jwtSecret, userID, time.Hour))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_AttachesCallerWithoutPasswordHash(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByID", mock.Anything, userID).Return(
		domain.User{ID: userID, Name: "Member", Role: domain.UserRoleMember, Password: "bcrypt-hash"},
		nil,
	).Once()

	var caller domain.User
	r := protectedRouter(userRepo, false, func(c *gin.Context) {
		var ok bool
		caller, ok = middleware.GetCaller(c)
		require.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := performProbe(r, "Bearer "+signToken(t, jwtSecret, userID, time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, userID, caller.ID)
	require.Empty(t, caller.Password)
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.UserRole
		wantCode int
	}{
		{name: "member denied", role: domain.UserRoleMember, wantCode: http.StatusForbidden},
		{name: "admin allowed", role: domain.UserRoleAdmin, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(userRepositoryMock)
			userRepo.On("FindByID", mock.Anything, userID).Return(
				domain.User{ID: userID, Role: tt.role},
				nil,
			).Once()

			r := protectedRouter(userRepo, true, func(c *gin.Context) { c.Status(http.StatusOK) })

			w := performProbe(r, "Bearer "+signToken(t, jwtSecret, userID, time.Hour))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusForbidden {
				require.JSONEq(t,
					`{"error": {"code": 403, "message": "Access denied."}}`,
					w.Body.String(),
				)
			}
		})
	}
}
