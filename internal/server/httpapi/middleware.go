package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/auth"
	"github.com/julienschmidt/httprouter"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// requireAuth resolves the caller's identity from the session cookie before
// the handler runs. No storage is touched until the token checks out; a
// missing or invalid token is a plain 401 either way.
func (s *Server) requireAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token, ok := auth.AuthToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, ok := auth.VerifyToken(token, s.jwtSecret)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx), ps)
	}
}

// requestClaims returns the identity stored by requireAuth.
func requestClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*auth.Claims)
	return claims, ok
}
