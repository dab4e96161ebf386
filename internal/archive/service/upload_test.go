package service

import (
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/docstash/docstash/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newUploadService(t *testing.T) *UploadService {
	t.Helper()
	return &UploadService{
		Dir:    t.TempDir(),
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestReceiveChunkReassembly(t *testing.T) {
	t.Parallel()
	svc := newUploadService(t)

	parts := []string{"first-", "second-", "third"}
	var final string
	for i, part := range parts {
		res, err := svc.ReceiveChunk(ChunkParams{
			Filename: "report.pdf",
			Index:    i,
			Total:    len(parts),
			Payload:  b64(part),
		})
		require.NoError(t, err)
		if i < len(parts)-1 {
			require.False(t, res.Done)
			require.Empty(t, res.Filename)
		} else {
			require.True(t, res.Done)
			final = res.Filename
		}
	}

	require.NotEqual(t, "report.pdf", final)
	require.Equal(t, ".pdf", filepath.Ext(final))

	data, err := os.ReadFile(filepath.Join(svc.Dir, final))
	require.NoError(t, err)
	require.Equal(t, "first-second-third", string(data))

	// The spool is gone after promotion.
	spool := filepath.Join(svc.Dir, "tmp_"+cryptox.Fingerprint("report.pdf")+".pdf")
	_, err = os.Stat(spool)
	require.True(t, os.IsNotExist(err))
}

func TestReceiveChunkFirstChunkResetsStaleSpool(t *testing.T) {
	t.Parallel()
	svc := newUploadService(t)

	// Aborted earlier attempt leaves a partial spool behind.
	_, err := svc.ReceiveChunk(ChunkParams{Filename: "notes.txt", Index: 0, Total: 3, Payload: b64("stale")})
	require.NoError(t, err)

	// A fresh upload of the same name must not inherit the stale bytes.
	_, err = svc.ReceiveChunk(ChunkParams{Filename: "notes.txt", Index: 0, Total: 2, Payload: b64("fresh-")})
	require.NoError(t, err)
	res, err := svc.ReceiveChunk(ChunkParams{Filename: "notes.txt", Index: 1, Total: 2, Payload: b64("data")})
	require.NoError(t, err)
	require.True(t, res.Done)

	data, err := os.ReadFile(filepath.Join(svc.Dir, res.Filename))
	require.NoError(t, err)
	require.Equal(t, "fresh-data", string(data))
}

func TestReceiveChunkDataURLPrefix(t *testing.T) {
	t.Parallel()
	svc := newUploadService(t)

	res, err := svc.ReceiveChunk(ChunkParams{
		Filename: "avatar.png",
		Index:    0,
		Total:    1,
		Payload:  "data:image/png;base64," + b64("pixels"),
	})
	require.NoError(t, err)
	require.True(t, res.Done)

	data, err := os.ReadFile(filepath.Join(svc.Dir, res.Filename))
	require.NoError(t, err)
	require.Equal(t, "pixels", string(data))
}

func TestReceiveChunkFailures(t *testing.T) {
	t.Parallel()
	svc := newUploadService(t)

	cases := []struct {
		name string
		p    ChunkParams
	}{
		{"empty filename", ChunkParams{Total: 1, Payload: b64("x")}},
		{"zero total", ChunkParams{Filename: "a.txt", Total: 0, Payload: b64("x")}},
		{"index out of range", ChunkParams{Filename: "a.txt", Index: 2, Total: 2, Payload: b64("x")}},
		{"bad base64", ChunkParams{Filename: "a.txt", Total: 1, Payload: "%%%not-base64%%%"}},
		{"data url without comma", ChunkParams{Filename: "a.txt", Total: 1, Payload: "data:text/plain;base64"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ReceiveChunk(tc.p)
			require.ErrorIs(t, err, ErrUploadFailed)
		})
	}
}
