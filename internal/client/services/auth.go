package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/formsclient/internal/client/api"
	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/logging"
)

const (
	LoginFallbackError        = "Authorization error"
	RegistrationFallbackError = "Email already used"

	PathUsers     = "/users"
	PathTemplates = "/templates"
)

// Authenticator is the part of the backend facade the auth forms need.
type Authenticator interface {
	Login(ctx context.Context, data models.Credentials) (*api.Response, error)
	Register(ctx context.Context, data models.Registration) (*api.Response, error)
}

// LoginForm backs the login page.
type LoginForm struct {
	submitter
	api Authenticator

	// FormData is bound to the page inputs and read once per Submit.
	FormData models.Credentials
}

func NewLoginForm(a Authenticator, store session.Store, nav Navigator, logger logging.Logger) *LoginForm {
	return &LoginForm{
		submitter: submitter{store: store, navigator: nav, logger: logger.With("form", "login"), fallback: LoginFallbackError},
		api:       a,
	}
}

// Submit logs in with FormData. Administrators land on the user list,
// everyone else on the templates list.
func (f *LoginForm) Submit(ctx context.Context) error {
	return f.run(ctx, func(ctx context.Context) (session.Identity, string, error) {
		resp, err := f.api.Login(ctx, f.FormData)
		if err != nil {
			return session.Identity{}, "", err
		}

		var body models.LoginResponse
		if err := resp.Decode(&body); err != nil {
			return session.Identity{}, "", fmt.Errorf("decode login response: %w", err)
		}

		id := session.Identity{UserID: body.ID, Token: body.Token, Role: body.Role}
		target := PathTemplates
		if id.IsAdmin() {
			target = PathUsers
		}
		return id, target, nil
	})
}

// RegistrationForm backs the registration page.
type RegistrationForm struct {
	submitter
	api Authenticator

	FormData models.Registration
}

func NewRegistrationForm(a Authenticator, store session.Store, nav Navigator, logger logging.Logger) *RegistrationForm {
	return &RegistrationForm{
		submitter: submitter{store: store, navigator: nav, logger: logger.With("form", "registration"), fallback: RegistrationFallbackError},
		api:       a,
	}
}

// Submit registers with FormData and always lands on the templates list.
func (f *RegistrationForm) Submit(ctx context.Context) error {
	return f.run(ctx, func(ctx context.Context) (session.Identity, string, error) {
		resp, err := f.api.Register(ctx, f.FormData)
		if err != nil {
			return session.Identity{}, "", err
		}

		var body models.RegistrationResponse
		if err := resp.Decode(&body); err != nil {
			return session.Identity{}, "", fmt.Errorf("decode registration response: %w", err)
		}
		return session.Identity{UserID: body.UserID, Token: body.Token, Role: body.Role}, PathTemplates, nil
	})
}

// Logout empties the session store.
func Logout(ctx context.Context, store session.Store) error {
	return store.Clear(ctx)
}
