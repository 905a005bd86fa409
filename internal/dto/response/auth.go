package response

import (
	"feedback-desk/internal/data/entity"
)

type AuthResponse struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	Role     entity.UserRole `json:"role"`
}

func AuthToResponse(user *entity.User) AuthResponse {
	return AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
