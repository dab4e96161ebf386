package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type ArchivesHandler struct {
	ArchiveService *service.ArchiveService
}

type archiveResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AuthorID    string    `json:"author_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toArchiveResponse(a domain.Archive) archiveResponse {
	return archiveResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// HandleList lists archives with optional title search.
//
//	@Summary	List archives
//	@Tags		Archives
//	@Produce	json
//	@Param		q		query		string	false	"Title substring"
//	@Param		page	query		int		false	"1-based page"
//	@Param		limit	query		int		false	"Page size (max 100)"
//	@Success	200		{array}		archiveResponse
//	@Router		/api/v1/archives [get].
func (h *ArchivesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	archives, err := h.ArchiveService.Search(r.Context(), q.Get("q"), page, limit)
	if err != nil {
		slogx.FromContext(r.Context()).Error("archive search failed", "err", err)
		errServer.WriteError(w)
		return
	}

	out := make([]archiveResponse, 0, len(archives))
	for _, a := range archives {
		out = append(out, toArchiveResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet fetches one archive.
//
//	@Summary	Get archive
//	@Tags		Archives
//	@Produce	json
//	@Param		id	path		string	true	"Archive id"
//	@Success	200	{object}	archiveResponse
//	@Failure	404	{object}	APIError
//	@Router		/api/v1/archives/{id} [get].
func (h *ArchivesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.ArchiveService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toArchiveResponse(a))
}

type createArchiveRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// HandleCreate stores a new archive authored by the current user.
//
//	@Summary	Create archive
//	@Tags		Archives
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createArchiveRequest	true	"Archive"
//	@Success	201		{object}	archiveResponse
//	@Failure	409		{object}	APIError	"Title already exists"
//	@Router		/api/v1/archives [post].
func (h *ArchivesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(ctx)
	if !ok {
		errServer.WriteError(w)
		return
	}

	var req createArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}
	if req.Title == "" {
		badRequest("title is required").WriteError(w)
		return
	}

	a, err := h.ArchiveService.Create(ctx, req.Title, req.Description, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			APIError{StatusCode: http.StatusConflict, Code: "conflict", Description: "Title already exists"}.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("archive create failed", "err", err)
		errServer.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toArchiveResponse(a))
}

// HandleDelete removes an archive.
//
//	@Summary	Delete archive
//	@Tags		Archives
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Archive id"
//	@Success	200	{object}	map[string]string
//	@Failure	404	{object}	APIError
//	@Router		/api/v1/archives/{id} [delete].
func (h *ArchivesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ArchiveService.Delete(r.Context(), r.PathValue("id")); err != nil {
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
