package memory

import (
	"context"
	"errors"
	"testing"

	"ai-nadsenci-web/internal/ports/source"
)

func TestContentSource_FetchAndCount(t *testing.T) {
	s := NewContentSource()
	s.PutString("texts.json", `{}`)
	boom := errors.New("boom")
	s.FailWith("events/x/event.json", boom)

	ctx := context.Background()

	b, err := s.Fetch(ctx, "/texts.json")
	if err != nil || string(b) != "{}" {
		t.Fatalf("fetch texts: %q %v", b, err)
	}
	if _, err := s.Fetch(ctx, "missing.json"); !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Fetch(ctx, "events/x/event.json"); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if _, err := s.Fetch(ctx, "../etc/passwd"); !errors.Is(err, source.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}

	if n := s.Fetches("texts.json"); n != 1 {
		t.Fatalf("expected 1 fetch, got %d", n)
	}
}
