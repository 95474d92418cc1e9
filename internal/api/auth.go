package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/logismart/logismart/internal/auth"
	"github.com/logismart/logismart/internal/model"
	"github.com/logismart/logismart/internal/store"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Gate      *auth.Gate
	Docs      *store.Documents
	JWTSecret string
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string             `json:"token"`
	Profile *model.UserProfile `json:"profile"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "user_id and password required")
		return
	}

	profile, err := h.Gate.Authenticate(req.UserID, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Warn("login failed", "user_id", req.UserID, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, profile.ID, profile.Name, profile.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	// Mirror the active session; a failed mirror doesn't block the login.
	if err := h.Docs.SaveSession(r.Context(), profile); err != nil {
		slog.Warn("failed to persist session", "error", err)
	}

	slog.Info("user logged in", "user", profile.Name, "role", profile.Role)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, Profile: profile})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := h.Docs.ClearSession(r.Context()); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}

	if claims != nil {
		slog.Info("user logged out", "user", claims.Name)
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}
