package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleViewer     = 3
)

// Claims identify the caller of the API. The subject names the operator or
// service the token was issued to.
type Claims struct {
	RoleID int `json:"role_id"`
	jwt.RegisteredClaims
}
