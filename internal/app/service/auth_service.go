package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

const bcryptCost = 10

type AuthService struct {
	userRepository   ports.UserRepository
	jwtSecret        []byte
	tokenTTL         time.Duration
	adminInviteToken string
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, jwtSecret string, tokenTTL time.Duration, adminInviteToken string) *AuthService {
	return &AuthService{
		userRepository:   userRepository,
		jwtSecret:        []byte(jwtSecret),
		tokenTTL:         tokenTTL,
		adminInviteToken: adminInviteToken,
	}
}

// Register creates a member account, or an admin account when the supplied
// invite token matches the server-held secret. A taken email fails with
// domain.ErrUserAlreadyExists and creates nothing.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterUserInput) (ports.AuthResult, error) {
	_, err := s.userRepository.FindByEmail(ctx, input.Email)
	if err == nil {
		return ports.AuthResult{}, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return ports.AuthResult{}, err
	}

	role := domain.UserRoleMember
	if input.AdminInviteToken != "" && s.adminInviteToken != "" &&
		subtle.ConstantTimeCompare([]byte(input.AdminInviteToken), []byte(s.adminInviteToken)) == 1 {
		role = domain.UserRoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return ports.AuthResult{}, err
	}

	user, err := s.userRepository.Create(ctx, domain.User{
		Name:            input.Name,
		Email:           input.Email,
		Password:        string(hash),
		ProfileImageURL: input.ProfileImageURL,
		Role:            role,
	})
	if err != nil {
		// The unique email index closes the check-then-create race.
		return ports.AuthResult{}, err
	}

	return s.authResult(user)
}

// Login verifies the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.AuthResult{}, domain.ErrInvalidCredentials
		}
		return ports.AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ports.AuthResult{}, domain.ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepository.FindByID(ctx, userID)
}

// UpdateProfile applies a partial profile edit and mints a fresh token.
// A supplied password is re-hashed; absent fields keep their stored value.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (ports.AuthResult, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return ports.AuthResult{}, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return ports.AuthResult{}, err
		}
		user.Password = string(hash)
	}

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		return ports.AuthResult{}, err
	}

	return s.authResult(updated)
}

func (s *AuthService) authResult(user domain.User) (ports.AuthResult, error) {
	token, err := s.generateToken(user.ID)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult{User: user, Token: token}, nil
}

// generateToken mints an HS256 token embedding the user id as subject with
// the fixed configured lifetime. There is no refresh or revocation.
func (s *AuthService) generateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
