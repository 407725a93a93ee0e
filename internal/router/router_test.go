package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ai-nadsenci-web/internal/adapters/storage/memory"
	"ai-nadsenci-web/internal/platform/metrics"
	"ai-nadsenci-web/internal/router"
)

func seedContent() *memory.ContentSource {
	src := memory.NewContentSource()
	src.PutString("texts.json", `{"events":{"heading":"Akce","buttons":{"learnMore":"Více"}}}`)
	src.PutString("organizers.json", `{"organizers":[]}`)
	src.PutString("partners.json", `{"partners":[]}`)
	src.PutString("events/index.json", `{"events":["a","b","c"]}`)
	src.PutString("events/a/event.json", `{"title":"A","date":"1. 2. 2025","status":"past","media":{"cover":"cover.jpg"}}`)
	src.PutString("events/c/event.json", `{"title":"C","date":"1. 3. 2027","status":"upcoming"}`)
	src.Put("events/a/cover.jpg", []byte{0xff, 0xd8, 0xff})
	return src
}

func newServer(t *testing.T, base string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		BasePath: base,
		Source:   seedContent(),
		Metrics:  metrics.New(),
		Now:      func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) },
	}))
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, url string) (int, http.Header, string) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, res.Header, string(b)
}

func TestHTTP_EndToEnd_UnderBasePath(t *testing.T) {
	ts := newServer(t, "AI-nadsenci-web")
	base := ts.URL + "/AI-nadsenci-web/"

	// 1) Home con el teaser
	{
		st, h, body := doReq(t, base)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on home, got %d", st)
		}
		if h.Get("X-Request-ID") == "" {
			t.Fatal("expected request id header")
		}
		if !strings.Contains(body, `href="/AI-nadsenci-web/akce/detail.html?id=c"`) {
			t.Fatal("home links should carry the base path")
		}
	}

	// 2) Listado: b no existe y se descarta
	{
		st, _, body := doReq(t, base+"akce/")
		if st != http.StatusOK {
			t.Fatalf("expected 200 on listing, got %d", st)
		}
		if !strings.Contains(body, `data-event-id="a"`) || !strings.Contains(body, `data-event-id="c"`) {
			t.Fatal("listing should show a and c")
		}
		if strings.Contains(body, `data-event-id="b"`) {
			t.Fatal("b should be dropped")
		}
		if !strings.Contains(body, `src="/AI-nadsenci-web/content/events/a/cover.jpg"`) {
			t.Fatal("cover should resolve under base/content")
		}
	}

	// 3) Detalle de b: placeholder de no encontrado
	{
		st, _, body := doReq(t, base+"akce/detail.html?id=b")
		if st != http.StatusNotFound || !strings.Contains(body, `id="event-not-found"`) {
			t.Fatalf("expected not found page, got %d", st)
		}
	}

	// 4) La portada sale del mismo Source
	{
		st, _, body := doReq(t, base+"content/events/a/cover.jpg")
		if st != http.StatusOK || body != "\xff\xd8\xff" {
			t.Fatalf("expected cover bytes, got %d", st)
		}
	}

	// 5) API JSON
	{
		st, _, body := doReq(t, base+"api/events")
		if st != http.StatusOK {
			t.Fatalf("expected 200 on api, got %d", st)
		}
		var out []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal([]byte(body), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out) != 2 || out[0].ID != "c" || out[1].ID != "a" {
			t.Fatalf("unexpected api order: %#v", out)
		}
	}

	// 6) Assets embebidos bajo el base path
	{
		st, _, _ := doReq(t, base+"images/placeholder-event.svg")
		if st != http.StatusOK {
			t.Fatalf("expected placeholder, got %d", st)
		}
		st, _, _ = doReq(t, base+"assets/site.css")
		if st != http.StatusOK {
			t.Fatalf("expected css, got %d", st)
		}
	}
}

func TestHTTP_RootEndpoints(t *testing.T) {
	ts := newServer(t, "/x/")

	st, _, body := doReq(t, ts.URL+"/health")
	if st != http.StatusOK || body != "ok" {
		t.Fatalf("health: %d %q", st, body)
	}

	// una página primero para que haya métricas de fetch
	doReq(t, ts.URL+"/x/")
	st, _, body = doReq(t, ts.URL+"/metrics")
	if st != http.StatusOK || !strings.Contains(body, "site_content_fetches_total") {
		t.Fatalf("metrics: %d", st)
	}

	st, _, body = doReq(t, ts.URL+"/swagger/doc.json")
	if st != http.StatusOK || !strings.Contains(body, `"basePath": "/x/"`) {
		t.Fatalf("swagger doc: %d", st)
	}

	// fuera del base path no hay páginas
	st, _, _ = doReq(t, ts.URL+"/akce/")
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 outside base path, got %d", st)
	}
}

func TestHTTP_DefaultSourceIsContentDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	files := map[string]string{
		"content/texts.json":          `{}`,
		"content/organizers.json":     `{"organizers":[]}`,
		"content/partners.json":       `{"partners":[]}`,
		"content/events/index.json":   `{"events":["a"]}`,
		"content/events/a/event.json": `{"title":"A","date":"1. 2. 2025","status":"past"}`,
	}
	for name, body := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{BasePath: "/"}))
	defer ts.Close()

	st, _, body := doReq(t, ts.URL+"/akce/")
	if st != http.StatusOK || !strings.Contains(body, `data-event-id="a"`) {
		t.Fatalf("expected listing from ./content, got %d", st)
	}
}
