package http

import (
	"encoding/json"
	"net/http"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/slogx"
)

type UploadHandler struct {
	UploadService *service.UploadService
}

type uploadChunkRequest struct {
	Name              string `json:"name"`
	Size              int64  `json:"size"`
	CurrentChunkIndex int    `json:"currentChunkIndex"`
	TotalChunks       int    `json:"totalChunks"`
	File              string `json:"file"`
}

type uploadChunkResponse struct {
	Done          bool   `json:"done"`
	FinalFilename string `json:"finalFilename,omitempty"`
}

// ServeHTTP ingests one chunk of a chunked base64 upload. Pending chunks are
// acknowledged with 201; the final chunk promotes the reassembled file and
// returns its stored name with 200.
//
//	@Summary		Upload a file chunk
//	@Description	Chunks are appended in order; chunk 0 restarts any aborted upload of the same name. The last chunk returns the stored filename.
//	@Tags			Archives
//	@Accept			json
//	@Produce		json
//	@Param			body	body		uploadChunkRequest	true	"Chunk"
//	@Success		200		{object}	uploadChunkResponse	"Upload complete"
//	@Success		201		{object}	uploadChunkResponse	"Chunk accepted, more expected"
//	@Failure		403		{object}	APIError	"Upload failed"
//	@Router			/api/v1/archives/upload [post].
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req uploadChunkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest("malformed JSON body").WriteError(w)
		return
	}

	res, err := h.UploadService.ReceiveChunk(service.ChunkParams{
		Filename: req.Name,
		Size:     req.Size,
		Index:    req.CurrentChunkIndex,
		Total:    req.TotalChunks,
		Payload:  req.File,
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("chunk rejected", "name", req.Name, "index", req.CurrentChunkIndex)
		mapServiceError(err).WriteError(w)
		return
	}

	status := http.StatusCreated
	if res.Done {
		status = http.StatusOK
	}
	httpx.WriteJSON(w, status, uploadChunkResponse{
		Done:          res.Done,
		FinalFilename: res.Filename,
	})
}
