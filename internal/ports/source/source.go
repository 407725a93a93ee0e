package source

import (
	"context"
	"errors"
	"path"
	"strings"
)

// ErrNotFound lo devuelve un Source cuando el documento no existe.
var ErrNotFound = errors.New("content: document not found")

// Source lee documentos del árbol de contenido por path relativo
// ("texts.json", "events/index.json", "events/{id}/cover.jpg").
// Es de solo lectura y no cachea.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// ErrInvalidPath rechaza paths absolutos o con segmentos "..".
var ErrInvalidPath = errors.New("content: invalid path")

// CleanPath normaliza un path relativo al root de contenido.
func CleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.Contains(p, "\\") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}
