package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// routeOf returns the mux path template serving r. It keeps label
// cardinality bounded by never using the raw path.
func routeOf(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
