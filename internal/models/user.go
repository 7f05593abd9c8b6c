package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser         Role = "user"
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleVeterinarian:
		return true
	}
	return false
}

// User is a flat account document. Password is write-only: it is stored as a
// bcrypt hash and never serialized into any API response.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	DateOfBirth    *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	Role           Role               `bson:"role" json:"role"`
	LastLogin      *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	FullName       string             `bson:"-" json:"fullName"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ComputeFullName fills the derived fullName field. It is not stored.
func (u *User) ComputeFullName() {
	u.FullName = u.FirstName + " " + u.LastName
}

type CreateUserRequest struct {
	Email          string     `json:"email" validate:"required,email"`
	Password       string     `json:"password" validate:"required"`
	FirstName      string     `json:"firstName" validate:"required"`
	LastName       string     `json:"lastName" validate:"required"`
	Phone          string     `json:"phone"`
	ProfilePicture string     `json:"profilePicture" validate:"omitempty,url"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	IsActive       *bool      `json:"isActive"`
	Role           Role       `json:"role" validate:"omitempty,oneof=user admin veterinarian"`
}

type UpdateUserRequest struct {
	Email          *string    `json:"email" validate:"omitempty,email"`
	FirstName      *string    `json:"firstName" validate:"omitempty,min=1"`
	LastName       *string    `json:"lastName" validate:"omitempty,min=1"`
	Phone          *string    `json:"phone"`
	ProfilePicture *string    `json:"profilePicture" validate:"omitempty,url"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	IsActive       *bool      `json:"isActive"`
	LastLogin      *time.Time `json:"lastLogin"`
}

type UpdateUserRoleRequest struct {
	Role Role `json:"role" validate:"required"`
}
