package service

import (
	"context"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(userRepository ports.UserRepository, taskRepository ports.TaskRepository) *UserService {
	return &UserService{userRepository: userRepository, taskRepository: taskRepository}
}

// ListMembers returns every member-role user together with their assigned
// task counts per status, computed at read time.
func (s *UserService) ListMembers(ctx context.Context) ([]domain.MemberOverview, error) {
	users, err := s.userRepository.ListByRole(ctx, domain.UserRoleMember)
	if err != nil {
		return nil, err
	}

	overviews := make([]domain.MemberOverview, 0, len(users))
	for _, user := range users {
		overview := domain.MemberOverview{User: user}

		for _, entry := range []struct {
			status domain.TaskStatus
			target *int64
		}{
			{domain.TaskStatusPending, &overview.PendingTask},
			{domain.TaskStatusInProgress, &overview.InProgressTask},
			{domain.TaskStatusCompleted, &overview.CompletedTask},
		} {
			status := entry.status
			count, err := s.taskRepository.Count(ctx, domain.TaskFilter{
				Status:     &status,
				AssignedTo: user.ID,
			})
			if err != nil {
				return nil, err
			}
			*entry.target = count
		}

		overviews = append(overviews, overview)
	}

	return overviews, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.userRepository.FindByID(ctx, id)
}
