// Package common contains shared constants and small helpers used across
// the forms client components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token on
	// outbound backend requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token in the Authorization header value.
	BearerScheme = "Bearer "

	// Keys under which the session identity triple is persisted.
	SessionKeyUserID = "userId"
	SessionKeyToken  = "token"
	SessionKeyRole   = "role"

	// RoleAdmin is the role value the backend assigns to administrators.
	RoleAdmin = "Admin"
)
