package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

// GetTemplates lists templates visible to viewer. It is a POST because the
// viewer travels in the body.
func (c *Client) GetTemplates(ctx context.Context, auth session.Identity, viewer models.Viewer) (*Response, error) {
	return c.authed(ctx, http.MethodPost, "templates", auth, viewer)
}

func (c *Client) GetTemplateByID(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("templates/%s", id), auth, nil)
}

func (c *Client) AddTemplate(ctx context.Context, auth session.Identity, authorID models.ID, tpl models.Template) (*Response, error) {
	return c.authed(ctx, http.MethodPost, fmt.Sprintf("templates/add/author/%s", authorID), auth, tpl)
}

func (c *Client) DeleteTemplate(ctx context.Context, auth session.Identity, id models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("templates/%s/delete", id), auth, nil)
}

func (c *Client) AddAuthorizedUsers(ctx context.Context, auth session.Identity, id models.ID, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPut, fmt.Sprintf("templates/%s/addAuthorizedUsers", id), auth, userIDs)
}

// DeleteAuthorizedUsers is wired to the add endpoint, exactly like the
// deployed frontend; see the package documentation.
func (c *Client) DeleteAuthorizedUsers(ctx context.Context, auth session.Identity, id models.ID, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPut, fmt.Sprintf("templates/%s/addAuthorizedUsers", id), auth, userIDs)
}
