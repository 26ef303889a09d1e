// Package gate implements the edge authorization policy: every page request
// is classified and either allowed through, sent to the login page, or sent
// to the authenticated area, before any handler logic runs.
package gate

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/auth"
)

// Decision is the gate's verdict for a request.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

const (
	// LoginPath is where unauthenticated requests to protected pages go.
	LoginPath = "/login"
	// DashboardPath is the authenticated area; logged-in users hitting the
	// login or signup pages are sent here.
	DashboardPath = "/dashboard"
)

// publicPaths require no session.
var publicPaths = map[string]struct{}{
	"/":       {},
	"/login":  {},
	"/signup": {},
}

// VerifyFunc reports whether a token string is a valid session token.
type VerifyFunc func(token string) bool

// Decide evaluates the access policy for a path and the request's token
// ("" when the cookie is absent). The rules apply in order:
//
//  1. no token and a protected path: go to login;
//  2. a token (even an invalid one) on the login/signup pages: go to the
//     dashboard;
//  3. an invalid token on a protected path: go to login;
//  4. otherwise the request proceeds. Invalid tokens on public paths fall
//     through unauthenticated.
//
// The function has no side effects; callers enact the redirect.
func Decide(path, token string, verify VerifyFunc) Decision {
	_, public := publicPaths[path]

	if token == "" {
		if !public {
			return RedirectLogin
		}
		return Allow
	}

	if path == "/login" || path == "/signup" {
		return RedirectDashboard
	}

	if !verify(token) && !public {
		return RedirectLogin
	}

	return Allow
}

// Middleware applies Decide to page requests before next runs. API routes
// (anything under /api/) carry their own per-handler identity checks and
// bypass the gate.
func Middleware(verify VerifyFunc, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		token, _ := auth.AuthToken(r)
		switch Decide(r.URL.Path, token, verify) {
		case RedirectLogin:
			http.Redirect(w, r, LoginPath, http.StatusTemporaryRedirect)
		case RedirectDashboard:
			http.Redirect(w, r, DashboardPath, http.StatusTemporaryRedirect)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
