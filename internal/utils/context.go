package utils

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "role"
)

// RoleAdmin is the role claim that unlocks admin routes.
const RoleAdmin = "ADMIN"
