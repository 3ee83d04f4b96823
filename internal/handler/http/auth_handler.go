package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/catalog-service/internal/auth"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type AccountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type AuthHandler struct {
	service  auth.Service
	validate *validator.Validate
}

func NewAuthHandler(service auth.Service, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validate: validate}
}

// RegisterRoutes wires the session endpoints. Register and login stay open,
// but registration never takes a group list: new accounts land in the default
// group and anything broader is granted by an operator. Logout requires the
// token it revokes.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register/", h.handleRegister)
	r.Post("/login/", h.handleLogin)
	r.Post("/logout/", h.handleLogout)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	account, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			respondWithError(w, http.StatusConflict, "Username already taken")
			return
		}
		log.Error().Err(err).Msg("Failed to register account")
		respondWithError(w, http.StatusInternalServerError, "Failed to register account")
		return
	}

	respondWithJSON(w, http.StatusCreated, AccountResponse{ID: account.ID, Username: account.Username})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	session, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Error().Err(err).Msg("Failed to log in")
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		respondWithError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	token, err := uuid.FromString(strings.TrimSpace(raw))
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Malformed bearer token")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		log.Error().Err(err).Msg("Failed to log out")
		respondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
