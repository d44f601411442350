package models

type Tag struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name"`
}

type Like struct {
	ID         ID `json:"id,omitempty"`
	TemplateID ID `json:"templateId,omitempty"`
	AuthorID   ID `json:"authorId,omitempty"`
}
