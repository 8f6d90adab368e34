package converter

import (
	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its public projection; the
// password hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
