package models

import "time"

type UserType string

const (
	UserAdmin   UserType = "admin"
	UserManager UserType = "manager"
	UserMember  UserType = "member"
)

func (t UserType) Valid() bool {
	switch t {
	case UserAdmin, UserManager, UserMember:
		return true
	}
	return false
}

// User is never hard-deleted: deactivation flips Active and the id stays
// resolvable forever. Password holds a bcrypt hash.
type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Type             UserType   `json:"type"`
	Active           bool       `json:"active"`
	Password         string     `json:"-"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastAccess       *time.Time `json:"last_access"`
}
