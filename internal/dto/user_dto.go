package dto

import "github.com/taskhive/taskhive-backend/internal/models"

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Type     models.UserType `json:"type"`
	Active   bool            `json:"active"`
	Password string          `json:"password"`
}

// UserPatch carries a sparse update: nil means "leave untouched". Only
// supplied fields are revalidated.
type UserPatch struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Type     *models.UserType `json:"type"`
	Active   *bool            `json:"active"`
	Password *string          `json:"password"`
}

type UserFilter struct {
	Active *bool
	Type   *models.UserType
}

type UserSearch struct {
	Name  string
	Email string
}
