package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

// GetForms lists the forms filled against templateID.
func (c *Client) GetForms(ctx context.Context, auth session.Identity, templateID models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("forms/template/%s", templateID), auth, nil)
}

func (c *Client) GetFormByID(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("forms/%s", id), auth, nil)
}

func (c *Client) AddForm(ctx context.Context, auth session.Identity, templateID, authorID models.ID, form models.Form) (*Response, error) {
	return c.authed(ctx, http.MethodPost, fmt.Sprintf("forms/add/template/%s/author/%s", templateID, authorID), auth, form)
}

func (c *Client) UpdateForm(ctx context.Context, auth session.Identity, id models.ID, form models.Form) (*Response, error) {
	return c.authed(ctx, http.MethodPut, fmt.Sprintf("forms/%s/update", id), auth, form)
}

func (c *Client) DeleteForm(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("forms/%s/delete", id), auth, nil)
}
