package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/formsclient/internal/client/api"
	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/router"
	"github.com/dmitrijs2005/formsclient/internal/client/services"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const backendUnavailable = "Backend unavailable"

func messageFor(err error) string {
	if msg, ok := api.MessageOf(err); ok {
		return msg
	}
	return backendUnavailable
}

// identity returns the caller's identity or redirects to the login page.
func (app *App) identity(w http.ResponseWriter, r *http.Request) (session.Identity, bool) {
	id, err := session.Require(r.Context(), storeFrom(r), app.now())
	switch {
	case err == nil:
		return id, true
	case errors.Is(err, common.ErrNoSession), errors.Is(err, common.ErrTokenExpired):
		http.Redirect(w, r, router.PathLogin, http.StatusSeeOther)
	default:
		app.serverError(w, r, err)
	}
	return session.Identity{}, false
}

func (app *App) current(r *http.Request) session.Identity {
	id, _ := storeFrom(r).Load(r.Context())
	return id
}

// ---- login & registration ----

type loginPage struct {
	Email string
}

func (app *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.render(w, r, http.StatusOK, "login", viewModel{Title: "Login", Identity: app.current(r), Yield: loginPage{}})
		return
	}

	nav := &services.RecordingNavigator{}
	form := services.NewLoginForm(app.api, storeFrom(r), nav, app.logger)
	form.FormData = models.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	release, err := app.submits.acquire("login", sessionIDFrom(r))
	if err != nil {
		app.render(w, r, http.StatusConflict, "login", viewModel{Title: "Login", Error: submitInFlight, Yield: loginPage{Email: form.FormData.Email}})
		return
	}
	defer release()

	if err := form.Submit(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	if msg := form.Error(); msg != "" {
		app.render(w, r, http.StatusUnauthorized, "login", viewModel{Title: "Login", Error: msg, Yield: loginPage{Email: form.FormData.Email}})
		return
	}
	http.Redirect(w, r, nav.Target(), http.StatusSeeOther)
}

type registrationPage struct {
	Name  string
	Email string
}

func (app *App) handleRegistration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.render(w, r, http.StatusOK, "registration", viewModel{Title: "Registration", Identity: app.current(r), Yield: registrationPage{}})
		return
	}

	nav := &services.RecordingNavigator{}
	form := services.NewRegistrationForm(app.api, storeFrom(r), nav, app.logger)
	form.FormData = models.Registration{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	release, err := app.submits.acquire("registration", sessionIDFrom(r))
	if err != nil {
		app.render(w, r, http.StatusConflict, "registration", viewModel{
			Title: "Registration",
			Error: submitInFlight,
			Yield: registrationPage{Name: form.FormData.Name, Email: form.FormData.Email},
		})
		return
	}
	defer release()

	if err := form.Submit(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	if msg := form.Error(); msg != "" {
		app.render(w, r, http.StatusBadRequest, "registration", viewModel{
			Title: "Registration",
			Error: msg,
			Yield: registrationPage{Name: form.FormData.Name, Email: form.FormData.Email},
		})
		return
	}
	http.Redirect(w, r, nav.Target(), http.StatusSeeOther)
}

func (app *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := services.Logout(r.Context(), storeFrom(r)); err != nil {
		app.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, router.PathLogin, http.StatusSeeOther)
}

// ---- users ----

type usersPage struct {
	Users []models.User
}

type userAction func(c *api.Client, ctx context.Context, auth session.Identity, ids []models.ID) (*api.Response, error)

var userActions = map[string]userAction{
	"block":     (*api.Client).BlockUsers,
	"unblock":   (*api.Client).UnblockUsers,
	"makeAdmin": (*api.Client).MakeAdmin,
	"makeUser":  (*api.Client).MakeUser,
	"delete":    (*api.Client).DeleteUsers,
}

func (app *App) handleUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := app.identity(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			app.renderUsers(w, r, id, http.StatusBadRequest, err.Error())
			return
		}
		action, ok := userActions[r.PostForm.Get("action")]
		if !ok {
			app.renderUsers(w, r, id, http.StatusBadRequest, "Unknown action")
			return
		}
		ids := make([]models.ID, 0, len(r.PostForm["ids"]))
		for _, v := range r.PostForm["ids"] {
			ids = append(ids, models.ID(v))
		}
		if len(ids) > 0 {
			if _, err := action(app.api, r.Context(), id, ids); err != nil {
				app.renderUsers(w, r, id, http.StatusBadGateway, messageFor(err))
				return
			}
		}
		http.Redirect(w, r, router.PathUsers, http.StatusSeeOther)
		return
	}

	app.renderUsers(w, r, id, http.StatusOK, "")
}

func (app *App) renderUsers(w http.ResponseWriter, r *http.Request, id session.Identity, status int, errMsg string) {
	var page usersPage

	resp, err := app.api.GetUsers(r.Context(), id, id.UserID)
	if err == nil {
		err = resp.Decode(&page.Users)
	}
	if err != nil && errMsg == "" {
		errMsg = messageFor(err)
		status = http.StatusBadGateway
	}

	app.render(w, r, status, "users", viewModel{Title: "Users", Error: errMsg, Identity: id, Yield: page})
}

// ---- templates ----

type templatesPage struct {
	Templates []models.Template
}

func (app *App) handleTemplates(w http.ResponseWriter, r *http.Request) {
	id, ok := app.identity(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		tpl := models.Template{
			Title:       strings.TrimSpace(r.PostFormValue("title")),
			Description: r.PostFormValue("description"),
			Topic:       strings.TrimSpace(r.PostFormValue("topic")),
			IsPublic:    r.PostFormValue("isPublic") == "true",
		}
		if _, err := app.api.AddTemplate(r.Context(), id, id.UserID, tpl); err != nil {
			app.renderTemplates(w, r, id, http.StatusBadGateway, messageFor(err))
			return
		}
		http.Redirect(w, r, router.PathTemplates, http.StatusSeeOther)
		return
	}

	app.renderTemplates(w, r, id, http.StatusOK, "")
}

func (app *App) renderTemplates(w http.ResponseWriter, r *http.Request, id session.Identity, status int, errMsg string) {
	var page templatesPage

	resp, err := app.api.GetTemplates(r.Context(), id, models.Viewer{UserID: id.UserID, Role: id.Role})
	if err == nil {
		err = resp.Decode(&page.Templates)
	}
	if err != nil && errMsg == "" {
		errMsg = messageFor(err)
		status = http.StatusBadGateway
	}

	app.render(w, r, status, "templates", viewModel{Title: "Templates", Error: errMsg, Identity: id, Yield: page})
}

type templatePage struct {
	ID       models.ID
	Template models.Template
	Forms    []models.Form
	Comments []models.Comment
}

func (app *App) handleTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := app.identity(w, r)
	if !ok {
		return
	}
	tid := models.ID(chi.URLParam(r, "id"))

	if r.Method == http.MethodPost {
		var err error
		switch r.PostFormValue("action") {
		case "like":
			_, err = app.api.AddLike(r.Context(), id, tid, id.UserID)
		case "comment":
			_, err = app.api.AddComment(r.Context(), id, tid, id.UserID, models.Comment{Text: r.PostFormValue("text")})
		default:
			app.renderTemplate(w, r, id, tid, http.StatusBadRequest, "Unknown action")
			return
		}
		if err != nil {
			app.renderTemplate(w, r, id, tid, http.StatusBadGateway, messageFor(err))
			return
		}
		http.Redirect(w, r, router.TemplatePath(tid.String()), http.StatusSeeOther)
		return
	}

	app.renderTemplate(w, r, id, tid, http.StatusOK, "")
}

func (app *App) renderTemplate(w http.ResponseWriter, r *http.Request, id session.Identity, tid models.ID, status int, errMsg string) {
	page := templatePage{ID: tid}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		resp, err := app.api.GetTemplateByID(ctx, id, tid)
		if err != nil {
			return err
		}
		return resp.Decode(&page.Template)
	})
	g.Go(func() error {
		resp, err := app.api.GetForms(ctx, id, tid)
		if err != nil {
			return err
		}
		return resp.Decode(&page.Forms)
	})
	g.Go(func() error {
		resp, err := app.api.GetComments(ctx, id, tid)
		if err != nil {
			return err
		}
		return resp.Decode(&page.Comments)
	})
	if err := g.Wait(); err != nil && errMsg == "" {
		errMsg = messageFor(err)
		status = http.StatusBadGateway
	}

	title := page.Template.Title
	if title == "" {
		title = "Template " + tid.String()
	}
	app.render(w, r, status, "template", viewModel{Title: title, Error: errMsg, Identity: id, Yield: page})
}
