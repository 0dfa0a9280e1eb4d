package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleMember     Role = ""
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// User is created on first sign-in and keyed by email. The role field
// is only ever changed through the promotion endpoints; there is no
// demotion path.
type User struct {
	ID        primitive.ObjectID
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
}

func (u *User) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}

	return false
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id string, role Role) error
}
