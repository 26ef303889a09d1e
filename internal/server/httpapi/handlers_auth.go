package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cloudkeeper/internal/common"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/auth"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers an account and opens a session in one step.
func (s *Server) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	if err := s.openSession(w, user); err != nil {
		s.logger.Error(r.Context(), "token issue failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": toUserResponse(user)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and opens a session.
func (s *Server) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// bad credentials are expected traffic; anything else is logged
		if !errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
		}
		writeServiceError(w, err)
		return
	}

	if err := s.openSession(w, user); err != nil {
		s.logger.Error(r.Context(), "token issue failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

// openSession issues a token for the user and sets the session cookie.
func (s *Server) openSession(w http.ResponseWriter, user *models.User) error {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return err
	}
	auth.SetAuthCookie(w, token, s.tokenValidity, s.secureCookies)
	return nil
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side session state to revoke.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	auth.ClearAuthCookie(w, s.secureCookies)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the account behind the current session.
func (s *Server) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := requestClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := s.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

// Health is a liveness probe.
func (s *Server) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
