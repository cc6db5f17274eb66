// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-car-rental/models"
)

// accessLevel describes who may reach the paths of a routeRule.
type accessLevel int

const (
	// accessIgnored paths are served without looking at the bearer token.
	accessIgnored accessLevel = iota
	accessPublic
	accessAuthenticated
	accessRole
)

// anyMethod matches every HTTP method.
const anyMethod = "*"

// routeRule grants access to requests whose method and path match.
//
// Patterns are either exact paths ("/orders") or prefixes ending in "/**",
// which match the prefix itself and everything below it.
type routeRule struct {
	method   string
	patterns []string
	access   accessLevel
	role     models.Role
}

func (rr routeRule) matches(method, path string) bool {
	if rr.method != anyMethod && rr.method != method {
		return false
	}
	for _, pattern := range rr.patterns {
		if matchPath(pattern, path) {
			return true
		}
	}
	return false
}

func matchPath(pattern, path string) bool {
	base, wildcard := strings.CutSuffix(pattern, "/**")
	if !wildcard {
		return pattern == path
	}
	if base == "" {
		return strings.HasPrefix(path, "/")
	}
	return path == base || strings.HasPrefix(path, base+"/")
}

func ignored(method string, patterns ...string) routeRule {
	return routeRule{method: method, patterns: patterns, access: accessIgnored}
}

func public(method string, patterns ...string) routeRule {
	return routeRule{method: method, patterns: patterns, access: accessPublic}
}

func authenticated(method string, patterns ...string) routeRule {
	return routeRule{method: method, patterns: patterns, access: accessAuthenticated}
}

func hasRole(role models.Role, method string, patterns ...string) routeRule {
	return routeRule{method: method, patterns: patterns, access: accessRole, role: role}
}

// routePolicy is evaluated top to bottom; the first matching rule decides.
type routePolicy []routeRule

// defaultRoutePolicy is the access table of the rental API.
var defaultRoutePolicy = routePolicy{
	ignored(anyMethod, "/health", "/version", "/metrics"),
	ignored(anyMethod, "/login", "/logout", "/token/refresh"),
	hasRole(models.RoleAdmin, http.MethodDelete, "/users/**"),
	hasRole(models.RoleAdmin, http.MethodPut, "/users/**"),
	hasRole(models.RoleManager, http.MethodPost, "/users/**"),
	hasRole(models.RoleManager, http.MethodGet, "/users/**"),
	hasRole(models.RoleAdmin, http.MethodDelete, "/cars/**"),
	hasRole(models.RoleAdmin, http.MethodPut, "/cars/**"),
	hasRole(models.RoleManager, http.MethodPost, "/cars/**"),
	hasRole(models.RoleUser, http.MethodGet, "/cars/**"),
	hasRole(models.RoleManager, http.MethodGet, "/orders"),
	hasRole(models.RoleUser, http.MethodPost, "/orders"),
	hasRole(models.RoleUser, anyMethod, "/payment/**", "/delivery/**"),
	public(anyMethod, "/registration/**"),
	authenticated(anyMethod, "/**"),
}

// decision is the verdict of a routeRule for one request.
type decision int

const (
	allow decision = iota
	unauthenticated
	forbidden
)

// match returns the first rule matching the request.
func (p routePolicy) match(method, path string) (routeRule, bool) {
	for _, rule := range p {
		if rule.matches(method, path) {
			return rule, true
		}
	}
	return routeRule{}, false
}

// permits returns the verdict of rr for identity, which is nil for
// anonymous requests.
func (rr routeRule) permits(identity *models.Identity) decision {
	switch rr.access {
	case accessIgnored, accessPublic:
		return allow
	case accessAuthenticated:
		if identity == nil {
			return unauthenticated
		}
		return allow
	case accessRole:
		if identity == nil {
			return unauthenticated
		}
		if !identity.HasRole(rr.role) {
			return forbidden
		}
		return allow
	}
	return forbidden
}

// decide returns the verdict for a request. A request matching no rule is
// forbidden.
func (p routePolicy) decide(method, path string, identity *models.Identity) decision {
	rule, ok := p.match(method, path)
	if !ok {
		return forbidden
	}
	return rule.permits(identity)
}
