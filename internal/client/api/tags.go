package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

func (c *Client) GetTags(ctx context.Context, auth session.Identity) (*Response, error) {
	return c.authed(ctx, http.MethodGet, "tags", auth, nil)
}

func (c *Client) GetTagByID(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("tags/%s", id), auth, nil)
}

func (c *Client) AddTag(ctx context.Context, auth session.Identity, tag models.Tag) (*Response, error) {
	return c.authed(ctx, http.MethodPost, "tags/add", auth, tag)
}

func (c *Client) UpdateTag(ctx context.Context, auth session.Identity, id models.ID, tag models.Tag) (*Response, error) {
	return c.authed(ctx, http.MethodPut, fmt.Sprintf("tags/%s/update", id), auth, tag)
}

func (c *Client) DeleteTag(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("tags/%s/delete", id), auth, nil)
}
