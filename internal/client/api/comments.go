package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

func (c *Client) GetComments(ctx context.Context, auth session.Identity, templateID models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("comments/template/%s", templateID), auth, nil)
}

func (c *Client) AddComment(ctx context.Context, auth session.Identity, templateID, authorID models.ID, comment models.Comment) (*Response, error) {
	return c.authed(ctx, http.MethodPost, fmt.Sprintf("comments/add/template/%s/author/%s", templateID, authorID), auth, comment)
}

func (c *Client) UpdateComment(ctx context.Context, auth session.Identity, id models.ID, comment models.Comment) (*Response, error) {
	return c.authed(ctx, http.MethodPut, fmt.Sprintf("comments/%s/update", id), auth, comment)
}

func (c *Client) DeleteComment(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("comments/%s/delete", id), auth, nil)
}
