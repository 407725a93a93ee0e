package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ai-nadsenci-web/internal/ports/source"
)

// Schema esperado:
//
//	CREATE TABLE content_documents (
//		path       text PRIMARY KEY,          -- "events/{id}/event.json"
//		body       bytea NOT NULL,
//		updated_at timestamptz NOT NULL DEFAULT now()
//	);
const selectDocument = `SELECT body FROM content_documents WHERE path = $1`

// ContentSource lee el árbol de contenido desde la tabla content_documents.
type ContentSource struct {
	db *sql.DB
}

func NewContentSource(db *sql.DB) *ContentSource {
	return &ContentSource{db: db}
}

func (s *ContentSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	p, err := source.CleanPath(path)
	if err != nil {
		return nil, err
	}

	var body []byte
	err = s.db.QueryRowContext(ctx, selectDocument, p).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", source.ErrNotFound, p)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch %s: %w", p, err)
	}
	return body, nil
}
