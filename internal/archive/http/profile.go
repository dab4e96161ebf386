package http

import (
	"net/http"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

// ProfileHandler serves the current account projection. It sits behind
// RequireActiveUser, so the user is already resolved.
type ProfileHandler struct{}

// ServeHTTP returns the authenticated account.
//
//	@Summary	Current user
//	@Tags		User
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	userResponse
//	@Failure	400	{object}	APIError	"Inactive user"
//	@Failure	401	{object}	APIError
//	@Router		/api/v1/user/me [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		errServer.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// DeactivateHandler soft-deletes the current account.
type DeactivateHandler struct {
	PasswordService *service.PasswordService
}

// ServeHTTP deactivates the authenticated account. Repeat calls succeed.
//
//	@Summary	Deactivate account
//	@Tags		User
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	401	{object}	APIError
//	@Router		/api/v1/user/profile [delete].
func (h *DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(ctx)
	if !ok {
		errServer.WriteError(w)
		return
	}

	if err := h.PasswordService.Deactivate(ctx, user.ID); err != nil {
		slogx.FromContext(ctx).Error("deactivation failed", "user_id", user.ID, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	slogx.FromContext(ctx).Info("account deactivated", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
