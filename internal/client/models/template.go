package models

import "time"

type Question struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Order       int    `json:"order"`
}

type Template struct {
	ID              ID         `json:"id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Topic           string     `json:"topic,omitempty"`
	AuthorID        ID         `json:"authorId,omitempty"`
	IsPublic        bool       `json:"isPublic"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	Questions       []Question `json:"questions,omitempty"`
	Tags            []Tag      `json:"tags,omitempty"`
	Likes           []Like     `json:"likes,omitempty"`
	AuthorizedUsers []ID       `json:"authorizedUsers,omitempty"`
}

// Viewer identifies who is listing templates, so the backend can filter
// private templates.
type Viewer struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
