package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/formsclient/internal/client/api"
	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/router"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

const (
	actionBlock     = "block"
	actionUnblock   = "unblock"
	actionMakeAdmin = "makeAdmin"
	actionMakeUser  = "makeUser"
	actionDelete    = "delete"
)

type userActionFn func(c *api.Client, ctx context.Context, auth session.Identity, ids []models.ID) (*api.Response, error)

var userActions = map[string]userActionFn{
	actionBlock:     (*api.Client).BlockUsers,
	actionUnblock:   (*api.Client).UnblockUsers,
	actionMakeAdmin: (*api.Client).MakeAdmin,
	actionMakeUser:  (*api.Client).MakeUser,
	actionDelete:    (*api.Client).DeleteUsers,
}

// Users lists the users visible to the current user.
func (a *App) Users(ctx context.Context) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	resp, err := a.api.GetUsers(ctx, id, id.UserID)
	if err != nil {
		return err
	}
	var users []models.User
	if err := resp.Decode(&users); err != nil {
		return err
	}

	_ = a.navigate(ctx, router.PathUsers)

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range users {
		status := "active"
		if u.IsBlocked {
			status = "blocked"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, status)
	}
	return tw.Flush()
}

// UserAction applies one of the bulk user operations to ids.
func (a *App) UserAction(ctx context.Context, action string, ids []string) error {
	fn, ok := userActions[action]
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}

	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	list := make([]models.ID, len(ids))
	for i, v := range ids {
		list[i] = models.ID(v)
	}

	if _, err := fn(a.api, ctx, id, list); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Done: %s %s\n", action, models.IDs(list))
	return nil
}
