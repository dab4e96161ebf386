package http

import (
	"encoding/json"
	"net/http"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ServeHTTP authenticates by email and password.
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a bearer access token. Unknown emails are reported as 404, distinct from a wrong password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginResponse
//	@Failure		401		{object}	APIError	"Incorrect password"
//	@Failure		404		{object}	APIError	"User not found"
//	@Router			/api/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest("email and password are required").WriteError(w)
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Info("login rejected", "email", req.Email, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	log.Info("login succeeded", "user_id", user.ID)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
