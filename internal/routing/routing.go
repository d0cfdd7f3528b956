// Package routing joins component route paths onto a mount prefix.
package routing

import (
	"net/http"
	"strings"
)

// Mux is the subset of *http.ServeMux the components register on.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Join mounts routePath under basePath. Surrounding whitespace and slashes
// are ignored on both sides, and the result always has a single leading
// slash and no trailing one ("/" when both are empty).
func Join(basePath, routePath string) string {
	basePath = strings.Trim(strings.TrimSpace(basePath), "/")
	routePath = strings.Trim(strings.TrimSpace(routePath), "/")

	switch {
	case basePath == "" && routePath == "":
		return "/"
	case basePath == "":
		return "/" + routePath
	case routePath == "":
		return "/" + basePath
	}
	return "/" + basePath + "/" + routePath
}
