package middleware

import "net/http"

// Chain composes middleware into one, first argument outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to Recovery(RequestID(Logging(handler))). Nil entries are
// skipped, so optional guards such as a disabled rate limiter can be passed
// as-is.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	active := make([]func(http.Handler) http.Handler, 0, len(middlewares))
	for _, mw := range middlewares {
		if mw != nil {
			active = append(active, mw)
		}
	}

	return func(handler http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			handler = active[i](handler)
		}
		return handler
	}
}
