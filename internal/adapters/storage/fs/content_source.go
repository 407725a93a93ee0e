package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"

	"ai-nadsenci-web/internal/ports/source"
)

// ContentSource lee del disco (o de cualquier fs.FS, p.ej. embed o fstest.MapFS).
type ContentSource struct {
	root iofs.FS
}

// NewContentSource usa dir como raíz del árbol de contenido.
func NewContentSource(dir string) *ContentSource {
	return &ContentSource{root: os.DirFS(dir)}
}

func NewContentSourceFS(root iofs.FS) *ContentSource {
	return &ContentSource{root: root}
}

func (s *ContentSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := source.CleanPath(path)
	if err != nil {
		return nil, err
	}

	b, err := iofs.ReadFile(s.root, p)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, source.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
