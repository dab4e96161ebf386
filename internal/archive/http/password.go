package http

import (
	"encoding/json"
	"net/http"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type ForgotPasswordHandler struct {
	PasswordService *service.PasswordService
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ServeHTTP starts a password reset. The response returns as soon as the
// code is committed; mail delivery happens in the background.
//
//	@Summary		Request a password reset
//	@Description	Mints a single-use reset code and mails a reset link to the account.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		forgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	APIError	"User not found"
//	@Router			/api/v1/user/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.Email == "" {
		badRequest("email is required").WriteError(w)
		return
	}

	if err := h.PasswordService.ForgotPassword(ctx, req.Email); err != nil {
		slogx.FromContext(ctx).Info("forgot-password rejected", "email", req.Email, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset email queued"})
}

type ResetPasswordHandler struct {
	PasswordService *service.PasswordService
}

type resetPasswordRequest struct {
	ResetPasswordToken string `json:"reset_password_token"`
	NewPassword        string `json:"new_password"`
	ConfirmPassword    string `json:"confirm_password"`
}

// ServeHTTP redeems a mailed reset code.
//
//	@Summary		Reset password
//	@Description	Redeems a single-use reset code. A missing, consumed or expired code is a 403; a new/confirm mismatch is a 401.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		resetPasswordRequest	true	"Reset form"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	APIError	"Passwords do not match"
//	@Failure		403		{object}	APIError	"Token expired"
//	@Failure		404		{object}	APIError	"User not found"
//	@Router			/api/v1/user/reset-password [put].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.ResetPasswordToken == "" || req.NewPassword == "" {
		badRequest("reset_password_token and new_password are required").WriteError(w)
		return
	}

	if err := h.PasswordService.ResetPassword(ctx, req.ResetPasswordToken, req.NewPassword, req.ConfirmPassword); err != nil {
		slogx.FromContext(ctx).Info("password reset rejected", "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	slogx.FromContext(ctx).Info("password reset completed")
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

type ChangePasswordHandler struct {
	PasswordService *service.PasswordService
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ServeHTTP rotates the password of the authenticated account.
//
//	@Summary	Change password
//	@Tags		User
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		changePasswordRequest	true	"Change form"
//	@Success	200		{object}	map[string]string
//	@Failure	401		{object}	APIError	"Wrong current password or mismatch"
//	@Router		/api/v1/user/change-password [put].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(ctx)
	if !ok {
		errServer.WriteError(w)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.NewPassword == "" {
		badRequest("new_password is required").WriteError(w)
		return
	}

	if err := h.PasswordService.ChangePassword(ctx, user.ID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		slogx.FromContext(ctx).Info("password change rejected", "user_id", user.ID, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	slogx.FromContext(ctx).Info("password changed", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
