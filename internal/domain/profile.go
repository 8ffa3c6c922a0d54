package domain

import "github.com/google/uuid"

const RoleAdmin = "admin"

// Profile is the slice of the storefront's user profile this service needs.
type Profile struct {
	ID   uuid.UUID
	Role string
}
