package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/budget/summary",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("first"), mark("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/budget/summary", nil))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
	assert.Equal(t, []string{"GET /v1/budget/summary"}, rt.Routes())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_004")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/budget/summary", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_RouteLabel(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/stores/:id",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	tests := []struct {
		name   string
		method string
		path   string
		want   string
	}{
		{"matched route reports its pattern", http.MethodGet, "/v1/stores/42", "/v1/stores/:id"},
		{"unknown path", http.MethodGet, "/v1/stores/42/extra", metrics.UnmatchedRoute},
		{"wrong method", http.MethodPost, "/v1/stores/42", metrics.UnmatchedRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, route := metrics.WithRoute(context.Background())
			req := httptest.NewRequest(tt.method, tt.path, nil).WithContext(ctx)

			rt.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, *route)
		})
	}
}
