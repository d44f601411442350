package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

func (c *Client) Register(ctx context.Context, data models.Registration) (*Response, error) {
	return c.do(ctx, http.MethodPost, "users/register", nil, data)
}

func (c *Client) Login(ctx context.Context, data models.Credentials) (*Response, error) {
	return c.do(ctx, http.MethodPost, "users/login", nil, data)
}

// GetUsers lists the users visible to userID.
func (c *Client) GetUsers(ctx context.Context, auth session.Identity, userID models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("users/%s/all", userID), auth, nil)
}

func (c *Client) GetUserByID(ctx context.Context, auth session.Identity, userID models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodGet, fmt.Sprintf("users/%s", userID), auth, nil)
}

func (c *Client) UpdateUserName(ctx context.Context, auth session.Identity, userID models.ID, data models.UserNameUpdate) (*Response, error) {
	return c.authed(ctx, http.MethodPut, fmt.Sprintf("users/%s/update", userID), auth, data)
}

// DeleteUsers sends the id list as the body of a DELETE request.
func (c *Client) DeleteUsers(ctx context.Context, auth session.Identity, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodDelete, "users/delete", auth, userIDs)
}

func (c *Client) BlockUsers(ctx context.Context, auth session.Identity, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPut, "users/block", auth, userIDs)
}

func (c *Client) UnblockUsers(ctx context.Context, auth session.Identity, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPut, "users/unblock", auth, userIDs)
}

func (c *Client) MakeAdmin(ctx context.Context, auth session.Identity, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPut, "users/makeAdmin", auth, userIDs)
}

func (c *Client) MakeUser(ctx context.Context, auth session.Identity, userIDs []models.ID) (*Response, error) {
	return c.authed(ctx, http.MethodPut, "users/makeUser", auth, userIDs)
}
