package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/router"
	"github.com/dmitrijs2005/formsclient/internal/client/services"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/dustin/go-humanize"
)

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and submits the
// registration form. A rejected registration is printed, not returned.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := services.NewRegistrationForm(a.api, a.store, services.NavigatorFunc(a.navigate), a.logger)
	form.FormData = models.Registration{Name: name, Email: email, Password: string(password)}

	if err := form.Submit(ctx); err != nil {
		return err
	}
	if msg := form.Error(); msg != "" {
		fmt.Fprintln(a.out, "Registration failed:", msg)
		return nil
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for email and password and submits the login form.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := services.NewLoginForm(a.api, a.store, services.NavigatorFunc(a.navigate), a.logger)
	form.FormData = models.Credentials{Email: email, Password: string(password)}

	if err := form.Submit(ctx); err != nil {
		return err
	}
	if msg := form.Error(); msg != "" {
		fmt.Fprintln(a.out, "Login unsuccessful:", msg)
		return nil
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout clears the stored identity and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := services.Logout(ctx, a.store); err != nil {
		return err
	}
	return a.navigate(ctx, router.PathLogin)
}

// WhoAmI prints the stored identity and, for JWT tokens, when it expires.
func (a *App) WhoAmI(ctx context.Context) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User: %s\nRole: %s\n", id.UserID, id.Role)
	if exp, ok := id.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Token expires %s (%s)\n", humanize.RelTime(exp, a.now(), "ago", "from now"), exp.Format("2006-01-02 15:04"))
	}
	return nil
}

// identity returns the current identity. An expired token is cleared and
// the prompt goes back to the login view.
func (a *App) identity(ctx context.Context) (session.Identity, error) {
	id, err := session.Require(ctx, a.store, a.now())
	switch {
	case errors.Is(err, common.ErrNoSession):
		return session.Identity{}, errors.New("please login first")
	case errors.Is(err, common.ErrTokenExpired):
		_ = a.navigate(ctx, router.PathLogin)
		return session.Identity{}, errors.New("session expired, please login again")
	}
	return id, err
}
