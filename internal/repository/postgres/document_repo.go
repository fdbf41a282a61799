package postgres

import (
	"context"
	"database/sql"
	"errors"

	"jugsite/internal/domain"
)

type documentRepository struct {
	DB *sql.DB
}

// NewDocumentRepository returns a DocumentStore over the content_documents table:
//
//	CREATE TABLE content_documents (
//		content_type TEXT NOT NULL,
//		id           TEXT NOT NULL,
//		body         TEXT NOT NULL,
//		PRIMARY KEY (content_type, id)
//	);
func NewDocumentRepository(db *sql.DB) domain.DocumentStore {
	return &documentRepository{
		DB: db,
	}
}

func (r *documentRepository) Get(ctx context.Context, contentType domain.ContentType, id string) ([]byte, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	query := `
		SELECT body
		FROM content_documents
		WHERE content_type = $1 AND id = $2
	`
	var body string
	err := r.DB.QueryRowContext(ctx, query, contentType.String(), id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(body), nil
}
