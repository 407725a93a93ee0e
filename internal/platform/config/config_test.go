package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":                  "/",
		"/":                 "/",
		"AI-nadsenci-web":   "/AI-nadsenci-web/",
		"/AI-nadsenci-web/": "/AI-nadsenci-web/",
		" /a/b ":            "/a/b/",
	}
	for in, want := range cases {
		if got := NormalizeBasePath(in); got != want {
			t.Fatalf("NormalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir) // sin .env en el cwd

	path := filepath.Join(dir, "config.yml")
	yml := `
server:
  addr: ":9000"
  base_path: "AI-nadsenci-web"
content:
  source: http
  base_url: "https://example.org/content/"
  timeout: 3s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("LOG_FORMAT", "json")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Addr != ":9000" || c.Server.BasePath != "/AI-nadsenci-web/" {
		t.Fatalf("unexpected server config: %#v", c.Server)
	}
	if c.Content.Source != SourceHTTP || c.Content.Timeout != 3*time.Second {
		t.Fatalf("unexpected content config: %#v", c.Content)
	}
	if c.Log.Level != "debug" || c.Log.Format != "json" {
		t.Fatalf("unexpected log config: %#v", c.Log)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default should be valid: %v", err)
	}

	c.Content.Source = SourcePostgres
	if err := c.Validate(); err == nil {
		t.Fatal("postgres without dsn should fail")
	}

	c.Content.Source = "ftp"
	if err := c.Validate(); err == nil {
		t.Fatal("unknown source should fail")
	}
}
