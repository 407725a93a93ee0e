package remote

import (
	"context"
	"fmt"

	"ai-nadsenci-web/internal/platform/httpclient"
	"ai-nadsenci-web/internal/ports/source"
)

// ContentSource lee el contenido publicado en otro host estático
// (el mismo layout content/... que sirve el sitio original).
type ContentSource struct {
	client *httpclient.Client
}

func NewContentSource(client *httpclient.Client) *ContentSource {
	return &ContentSource{client: client}
}

func (s *ContentSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	p, err := source.CleanPath(path)
	if err != nil {
		return nil, err
	}

	b, err := s.client.Get(ctx, p)
	if httpclient.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", source.ErrNotFound, p)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
