package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

// AddLike records a like by authorID on templateID. No body is sent.
func (c *Client) AddLike(ctx context.Context, auth session.Identity, templateID, authorID models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPost, fmt.Sprintf("likes/add/template/%s/author/%s", templateID, authorID), auth, nil)
}

func (c *Client) DeleteLike(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("likes/%s/delete", id), auth, nil)
}
