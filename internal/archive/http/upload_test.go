package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/stretchr/testify/require"
)

func newUploadHandler(t *testing.T) *UploadHandler {
	t.Helper()
	return &UploadHandler{
		UploadService: &service.UploadService{
			Dir:    t.TempDir(),
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
}

func postChunk(t *testing.T, h *UploadHandler, name string, index, total int, data string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"name":              name,
		"size":              len(data),
		"currentChunkIndex": index,
		"totalChunks":       total,
		"file":              base64.StdEncoding.EncodeToString([]byte(data)),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/archives/upload", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestUploadHandlerStatuses(t *testing.T) {
	t.Parallel()
	h := newUploadHandler(t)

	// Pending chunks acknowledge with 201 and no final name.
	for i := range 2 {
		rec := postChunk(t, h, "doc.pdf", i, 3, "part-")
		require.Equal(t, http.StatusCreated, rec.Code)

		var res uploadChunkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.False(t, res.Done)
		require.Empty(t, res.FinalFilename)
	}

	// The last chunk completes with 200 and the stored name.
	rec := postChunk(t, h, "doc.pdf", 2, 3, "tail")
	require.Equal(t, http.StatusOK, rec.Code)

	var res uploadChunkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Done)
	require.NotEmpty(t, res.FinalFilename)
	require.NotEqual(t, "doc.pdf", res.FinalFilename)
	require.Contains(t, rec.Body.String(), `"finalFilename"`)
}

func TestUploadHandlerFailureIs403(t *testing.T) {
	t.Parallel()
	h := newUploadHandler(t)

	body := bytes.NewReader([]byte(`{"name":"a.txt","currentChunkIndex":0,"totalChunks":1,"file":"%%%"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/archives/upload", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
