package dto

import "github.com/polkiloo/userservice/internal/domain/model"

// UserRequest describes user payload accepted on create and update.
type UserRequest struct {
	ID   int64  `json:"id" binding:"gte=0"`
	Name string `json:"name" binding:"required,max=255"`
	Role string `json:"role" binding:"max=64"`
}

// UserResponse represents a stored user.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// DeleteResponse acknowledges a removed user.
type DeleteResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToModel converts request payload to domain user.
func (r UserRequest) ToModel() model.User {
	return model.User{ID: r.ID, Name: r.Name, Role: model.Role(r.Role)}
}

// FromModel converts domain user to response payload.
func FromModel(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Role: string(u.Role)}
}

// FromModels converts a list of domain users, never returning nil.
func FromModels(users []model.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, FromModel(u))
	}
	return resp
}
