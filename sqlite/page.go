package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagelens"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagelens.PageService = (*PageService)(nil)

// PageService implements pagelens.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// HashContent computes xxHash of content and returns a hex string.
// Used to detect unchanged pages on refresh.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h)
	return hex.EncodeToString(b[:])
}

// CreatePage saves a new page.
func (s *PageService) CreatePage(ctx context.Context, page *pagelens.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if existing, err := s.FindPages(ctx, pagelens.PageFilter{URL: &page.URL}); err != nil {
		return err
	} else if len(existing) > 0 {
		return pagelens.Errorf(pagelens.ECONFLICT, "page already saved for %q", page.URL)
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = HashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, description, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.Description, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagelens.Page, error) {
	var page pagelens.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, description, content, content_hash, fetched_at
		FROM pages
		WHERE id = ?
	`, id).Scan(&page.ID, &page.URL, &page.Title, &page.Description, &page.Content,
		&page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = timeColumn("fetched_at", fetchedAt)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// FindPages retrieves pages matching the filter, newest first.
func (s *PageService) FindPages(ctx context.Context, filter pagelens.PageFilter) ([]*pagelens.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, description, content, content_hash, fetched_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	args = paginate(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pagelens.Page
	for rows.Next() {
		var page pagelens.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Title, &page.Description,
			&page.Content, &page.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		page.FetchedAt, err = timeColumn("fetched_at", fetchedAt)
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// UpdatePage updates the stored content of a page.
func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagelens.PageUpdate) (*pagelens.Page, error) {
	page, err := s.FindPageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		page.Title = *upd.Title
	}
	if upd.Description != nil {
		page.Description = *upd.Description
	}
	if upd.Content != nil {
		page.Content = *upd.Content
		page.ContentHash = HashContent(page.Content)
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	page.FetchedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE pages
		SET title = ?, description = ?, content = ?, content_hash = ?, fetched_at = ?
		WHERE id = ?
	`, page.Title, page.Description, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return page, nil
}

// DeletePage permanently removes a page. Answers cascade via the foreign key.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagelens.Errorf(pagelens.ENOTFOUND, "page not found")
	}

	return nil
}
