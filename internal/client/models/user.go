package models

type User struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
}

// UserNameUpdate is the body of users/{id}/update.
type UserNameUpdate struct {
	Name string `json:"name"`
}
