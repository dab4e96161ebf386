package archive_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupArchiveContainer(t)
	defer cleanup()

	t.Run("livez", func(t *testing.T) {
		var body struct {
			Status  string `json:"status"`
			Version string `json:"version"`
		}
		resp := doJSON(t, http.MethodGet, baseURL+"/livez", "", nil, &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body.Status)
		require.NotEmpty(t, body.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		var body struct {
			Status string `json:"status"`
			Checks struct {
				Database string `json:"database"`
			} `json:"checks"`
		}
		resp := doJSON(t, http.MethodGet, baseURL+"/readyz", "", nil, &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body.Status)
		require.Equal(t, "ok", body.Checks.Database)
	})
}
