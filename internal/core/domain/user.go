package domain

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// User is the stored user record. Password holds the bcrypt hash and must
// never reach a response body.
type User struct {
	ID              string
	Name            string
	Email           string
	Password        string
	ProfileImageURL *string
	Role            UserRole
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

type RegisterUserInput struct {
	Name             string
	Email            string
	Password         string
	ProfileImageURL  *string
	AdminInviteToken string
}

type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// MemberOverview is a member user with their per-status assigned task
// counts, computed at read time for the admin user list.
type MemberOverview struct {
	User
	PendingTask    int64
	InProgressTask int64
	CompletedTask  int64
}

// UserTaskStats is one row of the per-user report export.
type UserTaskStats struct {
	Name            string
	Email           string
	TaskCount       int64
	PendingTasks    int64
	InProgressTasks int64
	CompletedTasks  int64
}
