package service

import (
	"context"
	"errors"
	"strings"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/idx"
)

type WorkspaceService struct {
	Store store.Store
}

func (s *WorkspaceService) List(ctx context.Context) ([]domain.Workspace, error) {
	return s.Store.Workspaces().ListWorkspaces(ctx)
}

func (s *WorkspaceService) Get(ctx context.Context, id string) (domain.Workspace, error) {
	w, err := s.Store.Workspaces().GetWorkspaceByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Workspace{}, ErrNotFound
	}
	return w, err
}

func (s *WorkspaceService) Create(ctx context.Context, name, description, authorID string) (domain.Workspace, error) {
	w := domain.Workspace{
		ID:          idx.New().String(),
		Name:        name,
		Slug:        slugify(name),
		Description: description,
		AuthorID:    authorID,
	}
	if err := s.Store.Workspaces().CreateWorkspace(ctx, w); err != nil {
		return domain.Workspace{}, err
	}
	return w, nil
}

// slugify lowercases and collapses non-alphanumerics into single hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
