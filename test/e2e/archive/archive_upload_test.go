package archive_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkedUpload(t *testing.T) {
	baseURL, cleanup := setupArchiveContainer(t)
	defer cleanup()

	chunk := func(name string, index, total int, data string) map[string]any {
		return map[string]any{
			"name":              name,
			"size":              len(data),
			"currentChunkIndex": index,
			"totalChunks":       total,
			"file":              base64.StdEncoding.EncodeToString([]byte(data)),
		}
	}

	t.Run("three chunk upload completes", func(t *testing.T) {
		var res struct {
			Done          bool   `json:"done"`
			FinalFilename string `json:"finalFilename"`
		}

		parts := []string{"alpha-", "beta-", "gamma"}
		for i, part := range parts {
			resp := doJSON(t, http.MethodPost, baseURL+"/api/v1/archives/upload", "",
				chunk("dataset.csv", i, len(parts), part), &res)
			// Pending chunks acknowledge with 201; the final chunk returns 200.
			if i < len(parts)-1 {
				require.Equal(t, http.StatusCreated, resp.StatusCode)
			} else {
				require.Equal(t, http.StatusOK, resp.StatusCode)
			}
		}

		require.True(t, res.Done)
		require.NotEmpty(t, res.FinalFilename)
		require.NotEqual(t, "dataset.csv", res.FinalFilename)
	})

	t.Run("bad base64 is a generic 403", func(t *testing.T) {
		body := chunk("broken.bin", 0, 1, "x")
		body["file"] = "%%%not-base64%%%"

		resp := doJSON(t, http.MethodPost, baseURL+"/api/v1/archives/upload", "", body, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestArchiveCRUD(t *testing.T) {
	baseURL, cleanup := setupArchiveContainer(t)
	defer cleanup()

	token := registerAndLogin(t, baseURL, "iris@example.com", "pw-12345")

	var created struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}

	t.Run("create requires auth", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, baseURL+"/api/v1/archives", "", map[string]string{
			"title": "Unauthorized",
		}, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("create and fetch", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, baseURL+"/api/v1/archives", token, map[string]string{
			"title":       "Contract scans",
			"description": "2024 intake",
		}, &created)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NotEmpty(t, created.ID)

		var got struct {
			Title string `json:"title"`
		}
		resp = doJSON(t, http.MethodGet, baseURL+"/api/v1/archives/"+created.ID, "", nil, &got)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Contract scans", got.Title)
	})

	t.Run("search by title substring", func(t *testing.T) {
		var list []struct {
			ID string `json:"id"`
		}
		resp := doJSON(t, http.MethodGet, baseURL+"/api/v1/archives?q=Contract", "", nil, &list)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 1)
	})

	t.Run("delete then 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, baseURL+"/api/v1/archives/"+created.ID, token, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, http.MethodGet, baseURL+"/api/v1/archives/"+created.ID, "", nil, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
