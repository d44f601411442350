package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/formsclient/internal/client/session"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageNames = []string{"login", "registration", "users", "templates", "template"}

type viewModel struct {
	Title    string
	Error    string
	Identity session.Identity
	Yield    any
}

func parseTemplates() (map[string]*template.Template, error) {
	cache := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, err
		}
		cache[name] = t
	}
	return cache, nil
}

func (app *App) render(w http.ResponseWriter, r *http.Request, status int, name string, vm viewModel) {
	ts, ok := app.templates[name]
	if !ok {
		app.serverError(w, r, fmt.Errorf("template %s does not exist", name))
		return
	}

	buf := bytes.Buffer{}
	if err := ts.ExecuteTemplate(&buf, "layout", vm); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (app *App) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
