package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/smartscrabble/internal/api/apierr"
	"github.com/mcoot/smartscrabble/internal/middleware"
)

// Recovery turns a panic in an API handler, usually an agent or the
// legality checks behind it, into an INTERNAL_ERROR naming the route
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("surface", "api")), func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewPanicError(r.Method+" "+routeTemplate(r)))
	})
}

// routeTemplate returns the matched mux path template, or the raw path
// when the request did not go through the router
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}
