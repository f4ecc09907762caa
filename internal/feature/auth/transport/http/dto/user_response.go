// Package dto converts auth entities to the API models returned over HTTP.
package dto

import (
	"wellbeing_backend/internal/api"
	"wellbeing_backend/internal/feature/auth/domain/entity"
	"wellbeing_backend/internal/feature/auth/usecase"
)

// NewUser maps a persisted user to its public shape.
// The password hash is intentionally absent from api.User.
func NewUser(u *entity.User) api.User {
	return api.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		EmailTips: u.EmailTips,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserResponse builds the signup/login response body.
func NewUserResponse(res *usecase.AuthResult) api.UserResponse {
	out := api.UserResponse{User: NewUser(res.User)}
	if res.Token != "" {
		token := res.Token
		out.Token = &token
	}
	return out
}
