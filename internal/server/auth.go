// Dashboard login issuing session tokens.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	errUnauthorized   = errors.New("unauthorized")
	errInvalidAuthHdr = errors.New("invalid authorization header")
	errInvalidToken   = errors.New("invalid token")
)

// sessionTTL is how long an issued dashboard token stays valid.
const sessionTTL = 7 * 24 * time.Hour

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// handleLogin verifies the dashboard password and issues an HS256 token.
// Returns 404 when no password is configured, so clients can tell auth is
// disabled rather than treat it as a credential failure.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.AuthEnabled() {
		writeErrorCode(w, http.StatusNotFound, ErrorCodeNotFound, "Authentication is not configured")
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, ErrorCodeValidationFailed, "Invalid request body")
		return
	}
	if !s.cfg.CheckPassword(req.Password) {
		writeErrorCode(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "Invalid password")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "dashboard",
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, loginResponse{Token: signed})
}
