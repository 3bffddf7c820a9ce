package handler

import (
	"todo_backend/internal/api"
	"todo_backend/internal/feature/auth/domain/entity"
)

// toUserView exposes only the email; the password hash is always dropped.
func toUserView(u *entity.User) api.User {
	return api.User{Email: u.Email}
}
