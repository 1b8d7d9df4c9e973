package ports

import (
	"context"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

// AuthResult pairs a user with a freshly minted bearer token.
type AuthResult struct {
	User  domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Profile(ctx context.Context, userID string) (domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (AuthResult, error)
}

type UserService interface {
	ListMembers(ctx context.Context) ([]domain.MemberOverview, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}
