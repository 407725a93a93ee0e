package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"ai-nadsenci-web/docs"
	fsstore "ai-nadsenci-web/internal/adapters/storage/fs"
	"ai-nadsenci-web/internal/domain/content"
	"ai-nadsenci-web/internal/domain/events"
	"ai-nadsenci-web/internal/domain/pages"
	"ai-nadsenci-web/internal/middleware"
	"ai-nadsenci-web/internal/platform/config"
	"ai-nadsenci-web/internal/platform/logger"
	"ai-nadsenci-web/internal/platform/metrics"
	"ai-nadsenci-web/internal/ports/source"
	"ai-nadsenci-web/internal/web/render"
	"ai-nadsenci-web/internal/web/static"
)

type Options struct {
	Logger  logger.Logger    // nil: Nop
	Metrics *metrics.Metrics // nil: sin /metrics

	// BasePath es el prefijo público ("/" o "/x/"); se normaliza igual.
	BasePath string

	// Source lo abre main con storage.Open (y lo cierra). Si es nil se
	// usa el directorio por defecto de la config, sin recursos que cerrar.
	Source source.Source

	// StaticDir reemplaza los assets embebidos.
	StaticDir string

	// Now es el reloj del loader; default time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	base := config.NormalizeBasePath(opts.BasePath)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	docs.SwaggerInfo.BasePath = base
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	src := opts.Source
	if src == nil {
		src = fsstore.NewContentSource(config.Default().Content.Dir)
	}

	loader := content.NewLoader(src, content.Options{
		BasePath: base,
		Logger:   log,
		Metrics:  opts.Metrics,
		Now:      opts.Now,
	})

	// los templates van embebidos: si no parsean es un bug de build
	rnd, err := render.New(base)
	if err != nil {
		panic(fmt.Errorf("router: %w", err))
	}

	pagesHandler := pages.NewHandler(pages.NewService(loader), rnd, log, opts.Metrics)
	assets := http.FileServerFS(static.FS(opts.StaticDir))

	site := func(sr chi.Router) {
		pages.RegisterRoutes(sr, pagesHandler)
		events.RegisterRoutes(sr, loader)
		content.RegisterRoutes(sr, src)

		prefix := strings.TrimSuffix(base, "/")
		sr.Handle("/images/*", http.StripPrefix(prefix, assets))
		sr.Handle("/assets/*", http.StripPrefix(prefix, assets))
	}

	if base == "/" {
		site(r)
	} else {
		r.Route(strings.TrimSuffix(base, "/"), site)
	}

	return r
}
