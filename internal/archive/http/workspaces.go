package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type WorkspacesHandler struct {
	WorkspaceService *service.WorkspaceService
}

type workspaceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	AuthorID    string    `json:"author_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toWorkspaceResponse(ws domain.Workspace) workspaceResponse {
	return workspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Slug:        ws.Slug,
		Description: ws.Description,
		AuthorID:    ws.AuthorID,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}

// HandleList lists all workspaces, newest first.
//
//	@Summary	List workspaces
//	@Tags		Workspaces
//	@Produce	json
//	@Success	200	{array}	workspaceResponse
//	@Router		/api/v1/workspaces [get].
func (h *WorkspacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.WorkspaceService.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("workspace list failed", "err", err)
		errServer.WriteError(w)
		return
	}

	out := make([]workspaceResponse, 0, len(workspaces))
	for _, ws := range workspaces {
		out = append(out, toWorkspaceResponse(ws))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet fetches one workspace.
//
//	@Summary	Get workspace
//	@Tags		Workspaces
//	@Produce	json
//	@Param		id	path		string	true	"Workspace id"
//	@Success	200	{object}	workspaceResponse
//	@Failure	404	{object}	APIError
//	@Router		/api/v1/workspaces/{id} [get].
func (h *WorkspacesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ws, err := h.WorkspaceService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

type createWorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// HandleCreate stores a new workspace authored by the current user.
//
//	@Summary	Create workspace
//	@Tags		Workspaces
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createWorkspaceRequest	true	"Workspace"
//	@Success	201		{object}	workspaceResponse
//	@Failure	409		{object}	APIError	"Slug already exists"
//	@Router		/api/v1/workspaces [post].
func (h *WorkspacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(ctx)
	if !ok {
		errServer.WriteError(w)
		return
	}

	var req createWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.Name == "" {
		badRequest("name is required").WriteError(w)
		return
	}

	ws, err := h.WorkspaceService.Create(ctx, req.Name, req.Description, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			APIError{StatusCode: http.StatusConflict, Code: "conflict", Description: "Workspace already exists"}.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("workspace create failed", "err", err)
		errServer.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWorkspaceResponse(ws))
}
