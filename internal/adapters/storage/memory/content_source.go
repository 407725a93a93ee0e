package memory

import (
	"context"
	"sync"

	"ai-nadsenci-web/internal/ports/source"
)

// ContentSource guarda documentos en un map. Sirve para tests y para
// levantar el sitio en dev sin disco ni red.
type ContentSource struct {
	mu     sync.RWMutex
	docs   map[string][]byte
	errs   map[string]error
	counts map[string]int
}

func NewContentSource() *ContentSource {
	return &ContentSource{
		docs:   make(map[string][]byte),
		errs:   make(map[string]error),
		counts: make(map[string]int),
	}
}

// Put agrega o reemplaza un documento.
func (s *ContentSource) Put(path string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = append([]byte(nil), body...)
}

// PutString es Put con string, cómodo para JSON inline en tests.
func (s *ContentSource) PutString(path, body string) {
	s.Put(path, []byte(body))
}

// FailWith hace que Fetch(path) devuelva err.
func (s *ContentSource) FailWith(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[path] = err
}

// Fetches cuenta cuántas veces se pidió path.
func (s *ContentSource) Fetches(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[path]
}

func (s *ContentSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := source.CleanPath(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[p]++
	if err, ok := s.errs[p]; ok {
		return nil, err
	}
	b, ok := s.docs[p]
	if !ok {
		return nil, source.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}
