package dto

type RegisterRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	Email            string  `json:"email" binding:"required,email,max=255"`
	Password         string  `json:"password" binding:"required,min=6,max=255"`
	ProfileImageURL  *string `json:"profileImageUrl" binding:"omitempty,max=2048"`
	AdminInviteToken string  `json:"adminInviteToken"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6,max=255"`
}

// AuthResponse is returned by register, login and profile update. The
// password hash is never part of it.
type AuthResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	Token           string  `json:"token"`
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
