package http

import (
	"net/http"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
)

type VerifyTokenHandler struct {
	AuthService *service.AuthService
}

type verifyTokenResponse struct {
	Subject   string   `json:"sub"`
	Issuer    string   `json:"iss,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	ExpiresAt int64    `json:"exp"`
	IssuedAt  int64    `json:"iat"`
}

// ServeHTTP decodes and validates the bearer token without touching the
// database.
//
//	@Summary		Verify an access token
//	@Description	Returns the decoded claims of the bearer token. Expired tokens get a distinct description from invalid ones.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	verifyTokenResponse
//	@Failure		401	{object}	APIError	"Invalid or expired token"
//	@Router			/api/v1/auth/verify/token [post].
func (h *VerifyTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, ok := httpx.BearerToken(r)
	if !ok {
		mapServiceError(service.ErrTokenInvalid).WriteError(w)
		return
	}

	claims, err := h.AuthService.VerifyToken(raw)
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}

	resp := verifyTokenResponse{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
		Roles:   claims.Roles,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		resp.IssuedAt = claims.IssuedAt.Unix()
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}
