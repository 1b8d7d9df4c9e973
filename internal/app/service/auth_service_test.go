package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appservice "github.com/alipouryousefi/task-manager-back/internal/app/service"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

const (
	testJWTSecret   = "test-secret"
	testInviteToken = "invite-secret"
	testTokenTTL    = 7 * 24 * time.Hour
)

func newAuthService(userRepo *userRepositoryMock) *appservice.AuthService {
	return appservice.NewAuthService(userRepo, testJWTSecret, testTokenTTL, testInviteToken)
}

func TestAuthService_Register_DefaultsToMemberRole(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		if user.Role != domain.UserRoleMember {
			return false
		}
		// The stored password must be a hash of the submitted one.
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")) == nil
	})).Return(domain.User{ID: memberID, Name: "New", Email: "new@example.com", Role: domain.UserRoleMember}, nil).Once()

	service := newAuthService(userRepo)

	result, err := service.Register(context.Background(), domain.RegisterUserInput{
		Name:     "New",
		Email:    "new@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.Equal(t, memberID, result.User.ID)
	require.NotEmpty(t, result.Token)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_InviteTokenGrantsAdmin(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "boss@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.UserRoleAdmin
	})).Return(domain.User{ID: adminID, Role: domain.UserRoleAdmin}, nil).Once()

	service := newAuthService(userRepo)

	_, err := service.Register(context.Background(), domain.RegisterUserInput{
		Name:             "Boss",
		Email:            "boss@example.com",
		Password:         "s3cret-pass",
		AdminInviteToken: testInviteToken,
	})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_WrongInviteTokenStaysMember(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.UserRoleMember
	})).Return(domain.User{ID: memberID, Role: domain.UserRoleMember}, nil).Once()

	service := newAuthService(userRepo)

	_, err := service.Register(context.Background(), domain.RegisterUserInput{
		Name:             "Sneaky",
		Email:            "sneaky@example.com",
		Password:         "s3cret-pass",
		AdminInviteToken: "wrong-guess",
	})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmailCreatesNothing(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(
		domain.User{ID: memberID, Email: "taken@example.com"},
		nil,
	).Once()

	service := newAuthService(userRepo)

	_, err := service.Register(context.Background(), domain.RegisterUserInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "s3cret-pass",
	})

	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success_TokenSubjectIsUserID(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "member@example.com").Return(
		domain.User{ID: memberID, Email: "member@example.com", Password: string(hash)},
		nil,
	).Once()

	service := newAuthService(userRepo)

	result, err := service.Login(context.Background(), "member@example.com", "s3cret-pass")

	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	require.Equal(t, memberID, claims.Subject)
	require.WithinDuration(t, time.Now().Add(testTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "member@example.com").Return(
		domain.User{ID: memberID, Password: string(hash)},
		nil,
	).Once()

	service := newAuthService(userRepo)

	_, err = service.Login(context.Background(), "member@example.com", "wrong-pass")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()

	service := newAuthService(userRepo)

	_, err := service.Login(context.Background(), "ghost@example.com", "whatever")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile_RehashesPassword(t *testing.T) {
	oldHash, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := domain.User{ID: memberID, Name: "Member", Email: "member@example.com", Password: string(oldHash)}

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByID", mock.Anything, memberID).Return(stored, nil).Once()
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == "Renamed" &&
			bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-pass")) == nil
	})).Return(stored, nil).Once()

	service := newAuthService(userRepo)

	name := "Renamed"
	password := "new-pass"
	result, err := service.UpdateProfile(context.Background(), memberID, domain.UpdateProfileInput{
		Name:     &name,
		Password: &password,
	})

	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	userRepo.AssertExpectations(t)
}

func TestAuthService_UpdateProfile_AbsentFieldsKeepStoredValues(t *testing.T) {
	stored := domain.User{ID: memberID, Name: "Member", Email: "member@example.com", Password: "hash"}

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByID", mock.Anything, memberID).Return(stored, nil).Once()
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == "Member" && user.Email == "member@example.com" && user.Password == "hash"
	})).Return(stored, nil).Once()

	service := newAuthService(userRepo)

	_, err := service.UpdateProfile(context.Background(), memberID, domain.UpdateProfileInput{})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Profile_PropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByID", mock.Anything, memberID).Return(domain.User{}, repoErr).Once()

	service := newAuthService(userRepo)

	_, err := service.Profile(context.Background(), memberID)

	require.ErrorIs(t, err, repoErr)
}
