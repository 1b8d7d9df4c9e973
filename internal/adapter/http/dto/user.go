package dto

type UserItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	Role            string  `json:"role"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type MemberItem struct {
	UserItem
	PendingTask    int64 `json:"pendingTask"`
	InProgressTask int64 `json:"inProgressTask"`
	CompletedTask  int64 `json:"completedTask"`
}
