package models

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by users/login.
type LoginResponse struct {
	ID    ID     `json:"id"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegistrationResponse is returned by users/register. Note the identifier
// field is named differently from LoginResponse.
type RegistrationResponse struct {
	UserID ID     `json:"userId"`
	Token  string `json:"token"`
	Role   string `json:"role"`
}

// ErrorResponse is the body the backend sends with failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
}
