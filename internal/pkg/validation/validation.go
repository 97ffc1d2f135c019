package validation

import (
	"regexp"
	"strings"
)

// MaxRouteLength caps routes accepted from query strings and request bodies.
const MaxRouteLength = 256

// Route paths: optional leading slash, then path segments of letters, digits, '-', '_' or '/'.
var routeRe = regexp.MustCompile(`^/?[A-Za-z0-9_\-/]*$`)

// IsValidRoute reports whether route looks like a dashboard path. It says nothing about
// whether the route is known or permitted.
func IsValidRoute(route string) bool {
	if route == "" || len(route) > MaxRouteLength {
		return false
	}
	if strings.Contains(route, "//") {
		return false
	}
	return routeRe.MatchString(route)
}
