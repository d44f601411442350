package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/formsclient/internal/client/router"
)

// Open resolves path through the route table and shows that view. Unknown
// paths land on the login view, as in the browser.
func (a *App) Open(ctx context.Context, path string) error {
	res := router.Resolve(path)
	if res.Redirect != "" {
		fmt.Fprintf(a.out, "%s redirects to %s\n", path, res.Redirect)
		path = res.Redirect
		res = router.Resolve(path)
	}

	switch res.View {
	case router.ViewUsers:
		return a.Users(ctx)
	case router.ViewTemplates:
		return a.Templates(ctx)
	case router.ViewTemplate:
		return a.Template(ctx, res.Params["id"])
	case router.ViewRegistration:
		_ = a.navigate(ctx, path)
		fmt.Fprintln(a.out, "Type 'register' to create an account")
	default:
		_ = a.navigate(ctx, router.PathLogin)
		fmt.Fprintln(a.out, "Type 'login' to sign in")
	}
	return nil
}
