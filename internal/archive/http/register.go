package http

import (
	"encoding/json"
	"net/http"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Middlename      string `json:"middlename,omitempty"`
}

type userResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Firstname  string   `json:"firstname"`
	Lastname   string   `json:"lastname"`
	Middlename string   `json:"middlename,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
	IsActive   bool     `json:"is_active"`
	Roles      []string `json:"roles,omitempty"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Firstname:  u.Firstname,
		Lastname:   u.Lastname,
		Middlename: u.Middlename,
		PhotoURL:   u.PhotoURL,
		IsActive:   u.IsActive,
		Roles:      u.Roles,
	}
}

// ServeHTTP creates a new account.
//
//	@Summary		Register an account
//	@Description	Creates an active account keyed by email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"Registration form"
//	@Success		201		{object}	userResponse
//	@Failure		409		{object}	APIError	"Email already registered"
//	@Router			/api/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest("email and password are required").WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, service.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Middlename:      req.Middlename,
	})
	if err != nil {
		log.Info("registration rejected", "email", req.Email, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	log.Info("account registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}
