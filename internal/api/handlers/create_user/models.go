package create_user

import "github.com/m04kA/MMC-AppointmentService/internal/domain"

// CreateUserRequest HTTP request model
type CreateUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// FromDomain конвертирует доменного пользователя в HTTP response
func FromDomain(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
	}
}
