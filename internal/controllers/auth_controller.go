package controllers

import (
	"net/http"

	"acsd/internal/providers"
	"acsd/internal/services"

	json "github.com/goccy/go-json"
)

// AuthController composes the auth primitives the way a client would: the
// service verifies and simulates, the controller decides when session state
// is written or cleared.
type AuthController struct {
	logger  providers.Logger
	service services.AuthServiceInterface
}

func NewAuthController(logger providers.Logger, service services.AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		service: service,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user, err := ac.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := ac.service.StoreSession(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	ac.logger.Infof(providers.TypeApp, "Admin %s logged in", user.Email)
	writeJSON(w, http.StatusOK, user)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	if err := ac.service.ClearSession(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	user, err := ac.service.StoredSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Status reports token presence. When the token is gone the remaining
// session keys are cleared so the two can never drift apart.
func (ac *AuthController) Status(w http.ResponseWriter, r *http.Request) {
	ok, err := ac.service.Status(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		if err := ac.service.ClearSession(r.Context()); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": ok})
}
