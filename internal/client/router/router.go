// Package router holds the client route table: which page view answers a
// URL path, and where unknown paths are sent.
//
// The table is static. Specific routes always win over the catch-all no
// matter where the catch-all is declared, since matching is delegated to a
// chi radix tree rather than to declaration order. There are no guards;
// pages and the backend decide who may see what.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type View string

const (
	ViewLogin        View = "login"
	ViewRegistration View = "registration"
	ViewUsers        View = "users"
	ViewTemplates    View = "templates"
	ViewTemplate     View = "template"
)

const (
	PathLogin        = "/login"
	PathRegistration = "/registration"
	PathUsers        = "/users"
	PathTemplates    = "/templates"

	catchAll = "/*"
)

// Route maps a chi pattern either to a view or to a redirect target.
type Route struct {
	Pattern  string
	View     View
	Redirect string
}

// Table is the application's route table.
var Table = []Route{
	{Pattern: PathLogin, View: ViewLogin},
	{Pattern: PathRegistration, View: ViewRegistration},
	{Pattern: PathUsers, View: ViewUsers},
	{Pattern: PathTemplates, View: ViewTemplates},
	{Pattern: PathTemplates + "/{id}", View: ViewTemplate},
	{Pattern: catchAll, Redirect: PathLogin},
}

// Resolution is the outcome of resolving a path. Exactly one of View and
// Redirect is set.
type Resolution struct {
	View     View
	Params   map[string]string
	Redirect string
}

// Router resolves paths against a route table.
type Router struct {
	routes    []Route
	mux       *chi.Mux
	byPattern map[string]Route
}

var noop = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

func New(routes []Route) *Router {
	r := &Router{
		routes:    routes,
		mux:       chi.NewRouter(),
		byPattern: make(map[string]Route, len(routes)),
	}
	for _, rt := range routes {
		r.mux.Handle(rt.Pattern, noop)
		r.byPattern[rt.Pattern] = rt
	}
	return r
}

var defaultRouter = New(Table)

// Resolve resolves path against Table.
func Resolve(path string) Resolution {
	return defaultRouter.Resolve(path)
}

// Resolve returns the view for path together with its parameters, or the
// redirect target when only the catch-all matches. A path nothing matches
// resolves to a redirect to the login page.
func (r *Router) Resolve(path string) Resolution {
	path = normalize(path)

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return Resolution{Redirect: PathLogin}
	}

	rt, ok := r.byPattern[rctx.RoutePattern()]
	if !ok {
		return Resolution{Redirect: PathLogin}
	}
	if rt.Redirect != "" {
		return Resolution{Redirect: rt.Redirect}
	}

	res := Resolution{View: rt.View}
	for i, k := range rctx.URLParams.Keys {
		if k == "*" {
			continue
		}
		if res.Params == nil {
			res.Params = make(map[string]string)
		}
		res.Params[k] = rctx.URLParams.Values[i]
	}
	return res
}

// Register mounts the route table on m. Views missing from pages answer 404;
// redirect routes answer 302 Found.
func (r *Router) Register(m chi.Router, pages map[View]http.Handler) {
	for _, rt := range r.routes {
		if rt.Redirect != "" {
			m.Handle(rt.Pattern, redirectTo(rt.Redirect))
			continue
		}
		h, ok := pages[rt.View]
		if !ok {
			h = http.NotFoundHandler()
		}
		m.Handle(rt.Pattern, h)
	}
}

// Handler returns a chi router serving pages under Table. A single trailing
// slash is ignored, so /templates/ serves the templates view.
func Handler(pages map[View]http.Handler) http.Handler {
	m := chi.NewRouter()
	m.Use(middleware.StripSlashes)
	defaultRouter.Register(m, pages)
	return m
}

// Register mounts Table on m.
func Register(m chi.Router, pages map[View]http.Handler) {
	defaultRouter.Register(m, pages)
}

// TemplatePath builds the detail path of one template.
func TemplatePath(id string) string {
	return PathTemplates + "/" + id
}

func redirectTo(target string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, target, http.StatusFound)
	})
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
