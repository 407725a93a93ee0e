package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SourceFS       = "fs"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type ServerConfig struct {
	Addr         string        `yaml:"addr"`      // :8080
	BasePath     string        `yaml:"base_path"` // prefijo público, p.ej. /AI-nadsenci-web/
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	StaticDir    string        `yaml:"static_dir"` // opcional; si no, assets embebidos
}

type ContentConfig struct {
	Source  string        `yaml:"source"`   // fs | http | postgres
	Dir     string        `yaml:"dir"`      // fs: raíz con texts.json, events/...
	BaseURL string        `yaml:"base_url"` // http: https://host/content/
	DSN     string        `yaml:"dsn"`      // postgres
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type MetricsConfig struct {
	Enable bool `yaml:"enable"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default devuelve la config usada sin archivo ni env.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			BasePath:     "/",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Content: ContentConfig{
			Source:  SourceFS,
			Dir:     "content",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "ai-nadsenci-web",
		},
		Metrics: MetricsConfig{Enable: true},
	}
}

// Load arma la config en capas: defaults -> YAML (si path != "") -> .env -> env.
func Load(path string) (Config, error) {
	c := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env es opcional; en prod las variables vienen del entorno.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	applyEnv(&c)

	c.Server.BasePath = NormalizeBasePath(c.Server.BasePath)
	c.Content.Source = strings.ToLower(strings.TrimSpace(c.Content.Source))
	return c, c.Validate()
}

func applyEnv(c *Config) {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	c.Server.BasePath = getEnv("BASE_PATH", c.Server.BasePath)
	c.Server.StaticDir = getEnv("STATIC_DIR", c.Server.StaticDir)
	c.Content.Source = getEnv("CONTENT_SOURCE", c.Content.Source)
	c.Content.Dir = getEnv("CONTENT_DIR", c.Content.Dir)
	c.Content.BaseURL = getEnv("CONTENT_URL", c.Content.BaseURL)
	c.Content.DSN = getEnv("DB_DSN", c.Content.DSN)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.App = getEnv("APP_NAME", c.Log.App)
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Content.Source)) {
	case SourceFS:
		if strings.TrimSpace(c.Content.Dir) == "" {
			return errors.New("content.dir required for fs source")
		}
	case SourceHTTP:
		if strings.TrimSpace(c.Content.BaseURL) == "" {
			return errors.New("content.base_url required for http source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Content.DSN) == "" {
			return errors.New("content.dsn required for postgres source")
		}
	default:
		return fmt.Errorf("unsupported content source %q", c.Content.Source)
	}
	return nil
}

// NormalizeBasePath garantiza "/" al inicio y al final.
func NormalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
