package metrics

import "context"

// UnmatchedRoute labels requests that never reached a registered route:
// 404s, 405s, redirects and requests rejected before routing.
const UnmatchedRoute = "unmatched"

type routeKey struct{}

// WithRoute returns a context carrying a route slot set to UnmatchedRoute.
// The router fills it with the matched pattern via SetRoute.
func WithRoute(ctx context.Context) (context.Context, *string) {
	route := UnmatchedRoute
	return context.WithValue(ctx, routeKey{}, &route), &route
}

// SetRoute records the route pattern on the slot in ctx, if there is one.
func SetRoute(ctx context.Context, pattern string) {
	if route, ok := ctx.Value(routeKey{}).(*string); ok {
		*route = pattern
	}
}
