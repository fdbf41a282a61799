// Package filesystem serves content documents from a directory tree laid out
// as <content type>/<identifier>.yaml.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"jugsite/internal/domain"
)

// extensions are tried in order for each lookup.
var extensions = []string{".yaml", ".yml"}

type documentStore struct {
	fsys fs.FS
}

// NewDocumentStore returns a DocumentStore reading from fsys, typically
// os.DirFS of the content directory.
func NewDocumentStore(fsys fs.FS) domain.DocumentStore {
	return &documentStore{fsys: fsys}
}

func (s *documentStore) Get(ctx context.Context, contentType domain.ContentType, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !contentType.Valid() {
		return nil, fmt.Errorf("unknown content type %q", contentType)
	}
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	for _, ext := range extensions {
		name := path.Join(contentType.String(), id+ext)
		if !fs.ValidPath(name) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
		}
		data, err := fs.ReadFile(s.fsys, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}
	return nil, domain.ErrNotFound
}
