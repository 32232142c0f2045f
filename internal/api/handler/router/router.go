// Package router wraps httprouter with per-route middleware chains and JSON
// 404/405 responses.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"

	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	mux    *httprouter.Router
	routes []string
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) *Router {
	mux := httprouter.New()
	mux.NotFound = withRoute(metrics.UnmatchedRoute, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "route not found", nil)
	}))
	mux.MethodNotAllowed = withRoute(metrics.UnmatchedRoute, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "method not allowed", nil)
	}))

	router := &Router{mux: mux}
	for _, config := range configs {
		config(router)
	}
	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registers routes. The first middleware listed on a route runs
// outermost. Each route reports its pattern, not the request path, as the
// metrics route label.
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		chain := alice.New()
		for _, mw := range route.Middlewares {
			chain = chain.Append(alice.Constructor(mw))
		}

		r.mux.Handler(route.Method, route.Path, withRoute(route.Path, chain.Then(route.Handler)))
		r.routes = append(r.routes, route.Method+" "+route.Path)
	}
}

func withRoute(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		metrics.SetRoute(req.Context(), pattern)
		next.ServeHTTP(w, req)
	})
}

// Routes lists the registered routes as "METHOD /path", in registration order.
func (r *Router) Routes() []string {
	return append([]string(nil), r.routes...)
}
