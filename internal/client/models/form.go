package models

import "time"

type Answer struct {
	QuestionID ID     `json:"questionId"`
	Value      string `json:"value"`
}

// Form is one filled-out submission against a template.
type Form struct {
	ID         ID         `json:"id,omitempty"`
	TemplateID ID         `json:"templateId,omitempty"`
	AuthorID   ID         `json:"authorId,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	Answers    []Answer   `json:"answers"`
}

type Comment struct {
	ID         ID         `json:"id,omitempty"`
	TemplateID ID         `json:"templateId,omitempty"`
	AuthorID   ID         `json:"authorId,omitempty"`
	Text       string     `json:"text"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}
