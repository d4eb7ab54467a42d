package models

import "time"

// Roles a user account can hold. Endpoint access is an exact match on the
// role — there is no hierarchy.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Name is the unique user name chosen at registration.
	// Used as the login identifier during authentication.
	Name string `json:"user_name"`

	// Password carries the bcrypt hash at the persistence layer and the
	// plain-text password only transiently inside a registration or login
	// request. It is never serialized into responses.
	Password string `json:"-"`

	// Role is either "buyer" or "seller" and determines endpoint access.
	Role string `json:"user_type"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// ValidRole reports whether role is one of the two known account roles.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
