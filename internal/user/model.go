package user

type Role string

// RoleAdmin marks users who receive admin notifications.
const RoleAdmin Role = "ADMIN"
