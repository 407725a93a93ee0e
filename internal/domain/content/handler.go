package content

import (
	"errors"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"ai-nadsenci-web/internal/ports/source"
)

// RegisterRoutes sirve el árbol de contenido tal cual (JSON, portadas,
// galerías, videos) desde el mismo Source que usa el loader.
func RegisterRoutes(r chi.Router, src source.Source) {
	r.Get("/content/*", contentHandler(src))
}

func contentHandler(src source.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := source.CleanPath(chi.URLParam(r, "*"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		b, err := src.Fetch(r.Context(), p)
		switch {
		case errors.Is(err, source.ErrNotFound):
			http.NotFound(w, r)
			return
		case err != nil:
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}

		ct := mime.TypeByExtension(path.Ext(p))
		if ct == "" {
			ct = http.DetectContentType(b)
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}
