package mapper

import (
	"time"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/dto"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.ProfileImageURL != nil {
		value := *user.ProfileImageURL
		item.ProfileImageURL = &value
	}

	return item
}

func ToMemberItems(overviews []domain.MemberOverview) []dto.MemberItem {
	items := make([]dto.MemberItem, 0, len(overviews))
	for _, overview := range overviews {
		items = append(items, dto.MemberItem{
			UserItem:       ToUserItem(overview.User),
			PendingTask:    overview.PendingTask,
			InProgressTask: overview.InProgressTask,
			CompletedTask:  overview.CompletedTask,
		})
	}
	return items
}

func ToAuthResponse(result ports.AuthResult) dto.AuthResponse {
	response := dto.AuthResponse{
		ID:    result.User.ID,
		Name:  result.User.Name,
		Email: result.User.Email,
		Role:  string(result.User.Role),
		Token: result.Token,
	}

	if result.User.ProfileImageURL != nil {
		value := *result.User.ProfileImageURL
		response.ProfileImageURL = &value
	}

	return response
}
