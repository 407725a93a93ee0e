package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetrics_ExposesCounters(t *testing.T) {
	m := New()
	m.ContentFetch("event", "ok")
	m.ContentFetch("event", "not_found")
	m.PageRender("home", "ok", 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	out := string(body)
	for _, want := range []string{
		`site_content_fetches_total{kind="event",result="ok"} 1`,
		`site_content_fetches_total{kind="event",result="not_found"} 1`,
		`site_page_renders_total{outcome="ok",page="home"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ContentFetch("texts", "ok")
	m.PageRender("detail", "error", time.Second)
}
