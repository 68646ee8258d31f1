package service

import (
	"strings"

	"github.com/Behyna/sms-services/smsrelay/internal/config"
)

type Route struct {
	URL string
	// Key is the routing table key that matched.
	Key   string
	Exact bool
}

type Router interface {
	Resolve(identifier string) (Route, bool)
}

type router struct {
	routes config.RoutingTable
}

func NewRouter(cfg *config.Config) Router {
	return &router{routes: cfg.Routes}
}

// Resolve looks identifier up by exact key first. Failing that, the longest
// key that occurs inside identifier wins; keys of equal length are tried in
// table order. Empty keys only ever match exactly.
func (r *router) Resolve(identifier string) (Route, bool) {
	if identifier == "" {
		return Route{}, false
	}

	if url, ok := r.routes.Get(identifier); ok {
		return Route{URL: url, Key: identifier, Exact: true}, true
	}

	best := ""
	for _, key := range r.routes.Keys() {
		if key == "" || len(key) <= len(best) || !strings.Contains(identifier, key) {
			continue
		}
		best = key
	}

	if best == "" {
		return Route{}, false
	}

	url, _ := r.routes.Get(best)
	return Route{URL: url, Key: best}, true
}
