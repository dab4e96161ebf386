package service

import (
	"context"
	"errors"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/idx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ArchiveService is thin CRUD over the archives repo; pagination and the
// not-found mapping live here so handlers stay dumb.
type ArchiveService struct {
	Store store.Store
}

// Search lists archives whose title contains q. Page is 1-based.
func (s *ArchiveService) Search(ctx context.Context, q string, page, limit int) ([]domain.Archive, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return s.Store.Archives().SearchArchives(ctx, q, limit, (page-1)*limit)
}

func (s *ArchiveService) Get(ctx context.Context, id string) (domain.Archive, error) {
	a, err := s.Store.Archives().GetArchiveByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Archive{}, ErrNotFound
	}
	return a, err
}

// Create stores a new archive authored by the current user. Titles are
// unique; a duplicate surfaces as store.ErrAlreadyExists.
func (s *ArchiveService) Create(ctx context.Context, title, description, authorID string) (domain.Archive, error) {
	a := domain.Archive{
		ID:          idx.New().String(),
		Title:       title,
		Description: description,
		AuthorID:    authorID,
	}
	if err := s.Store.Archives().CreateArchive(ctx, a); err != nil {
		return domain.Archive{}, err
	}
	return a, nil
}

func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	err := s.Store.Archives().DeleteArchive(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
