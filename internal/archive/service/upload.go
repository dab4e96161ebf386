package service

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/docstash/docstash/pkg/cryptox"
)

// UploadService reassembles chunked base64 uploads into files under Dir.
// Each in-flight upload spools into a name-derived temp file; the final
// chunk promotes the spool to its permanent, timestamp-derived name.
//
// Spool identity is the client-supplied filename, so two clients uploading
// the same name concurrently interleave into one spool. That matches the
// upstream contract; callers wanting isolation must unique-ify names.
type UploadService struct {
	Dir    string
	Logger *slog.Logger
}

// ChunkParams is one slice of an upload. Index is zero-based; Payload is
// base64, optionally carrying a data-URL prefix ("data:...;base64,").
type ChunkParams struct {
	Filename string
	Size     int64
	Index    int
	Total    int
	Payload  string
}

// ChunkResult reports progress. Filename is set only once the upload is
// complete and names the promoted file relative to Dir.
type ChunkResult struct {
	Done     bool
	Filename string
}

// ReceiveChunk appends one decoded chunk to the spool for its filename.
// Chunk 0 discards any stale spool left by an aborted earlier attempt.
// Every failure is logged with detail but surfaces as the generic
// ErrUploadFailed; the spool is left in place for a client retry.
func (s *UploadService) ReceiveChunk(p ChunkParams) (ChunkResult, error) {
	if p.Filename == "" || p.Total <= 0 || p.Index < 0 || p.Index >= p.Total {
		return ChunkResult{}, ErrUploadFailed
	}

	data, err := decodeChunkPayload(p.Payload)
	if err != nil {
		s.Logger.Warn("upload chunk decode failed", "filename", p.Filename, "index", p.Index, "err", err)
		return ChunkResult{}, ErrUploadFailed
	}

	spool := s.spoolPath(p.Filename)

	if p.Index == 0 {
		if err := os.Remove(spool); err != nil && !os.IsNotExist(err) {
			s.Logger.Warn("stale spool removal failed", "path", spool, "err", err)
			return ChunkResult{}, ErrUploadFailed
		}
	}

	if err := appendFile(spool, data); err != nil {
		s.Logger.Error("spool append failed", "path", spool, "err", err)
		return ChunkResult{}, ErrUploadFailed
	}

	if p.Index != p.Total-1 {
		return ChunkResult{}, nil
	}

	final := s.finalName(p.Filename)
	if err := os.Rename(spool, filepath.Join(s.Dir, final)); err != nil {
		s.Logger.Error("spool promotion failed", "path", spool, "err", err)
		return ChunkResult{}, ErrUploadFailed
	}

	s.Logger.Info("upload complete", "filename", p.Filename, "stored_as", final, "chunks", p.Total)
	return ChunkResult{Done: true, Filename: final}, nil
}

func (s *UploadService) spoolPath(name string) string {
	return filepath.Join(s.Dir, "tmp_"+cryptox.Fingerprint(name)+filepath.Ext(name))
}

func (s *UploadService) finalName(name string) string {
	stamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	return cryptox.Fingerprint(stamp) + filepath.Ext(name)
}

// decodeChunkPayload accepts plain base64 or a browser data URL, where the
// payload follows the first comma.
func decodeChunkPayload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		_, rest, ok := strings.Cut(payload, ",")
		if !ok {
			return nil, fmt.Errorf("data url without payload")
		}
		payload = rest
	}
	return base64.StdEncoding.DecodeString(payload)
}

func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
