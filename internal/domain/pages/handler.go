package pages

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ai-nadsenci-web/internal/middleware"
	"ai-nadsenci-web/internal/platform/logger"
	"ai-nadsenci-web/internal/platform/metrics"
	"ai-nadsenci-web/internal/web/render"
)

type Handler struct {
	svc     *Service
	render  *render.Renderer
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewHandler(svc *Service, r *render.Renderer, log logger.Logger, m *metrics.Metrics) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{svc: svc, render: r, log: log.With(map[string]any{"component": "pages"}), metrics: m}
}

// RegisterRoutes monta las páginas relativas al base path del router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.home)
	r.Get("/index.html", h.home)
	r.Get("/akce", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, req.URL.Path+"/", http.StatusMovedPermanently)
	})
	r.Get("/akce/", h.listing)
	r.Get("/akce/index.html", h.listing)
	r.Get("/akce/detail.html", h.detail)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	v, err := h.svc.Home(r.Context())
	if err != nil {
		h.fail(w, r, render.PageHome, start, err)
		return
	}
	h.write(w, r, render.PageHome, start, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.render.Home(buf, v)
	})
}

func (h *Handler) listing(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	v, err := h.svc.Listing(r.Context())
	if err != nil {
		h.fail(w, r, render.PageListing, start, err)
		return
	}
	h.write(w, r, render.PageListing, start, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.render.Listing(buf, v)
	})
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := ParseDetailQuery(r.URL.Query().Get)

	v, nf, err := h.svc.Detail(r.Context(), q)
	switch {
	case errors.Is(err, ErrNotFound):
		middleware.LoggerFrom(r.Context(), h.log).Info("event not found", map[string]any{"event_id": q.ID})
		h.metrics.PageRender(render.PageDetail, "not_found", time.Since(start))
		h.send(w, r, render.PageDetail, http.StatusNotFound, func(buf *bytes.Buffer) error {
			return h.render.NotFound(buf, nf)
		})
	case err != nil:
		h.fail(w, r, render.PageDetail, start, err)
	default:
		h.write(w, r, render.PageDetail, start, http.StatusOK, func(buf *bytes.Buffer) error {
			return h.render.Detail(buf, v)
		})
	}
}

// write renderiza, cuenta la métrica y responde; si el render falla
// cae a fail.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, page string, start time.Time, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.fail(w, r, page, start, err)
		return
	}
	h.metrics.PageRender(page, "ok", time.Since(start))
	writeHTML(w, status, buf.Bytes())
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request, page string, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		middleware.LoggerFrom(r.Context(), h.log).Error("render failed", map[string]any{"page": page, "err": err})
		h.shell(w, r)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

// fail loguea y responde la página vacía con 500. Al usuario no le llega
// texto de error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, page string, start time.Time, err error) {
	middleware.LoggerFrom(r.Context(), h.log).Error("error initializing page", map[string]any{"page": page, "err": err})
	h.metrics.PageRender(page, "error", time.Since(start))
	h.shell(w, r)
}

func (h *Handler) shell(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.render.Shell(&buf, render.Chrome{}); err != nil {
		middleware.LoggerFrom(r.Context(), h.log).Error("render shell failed", map[string]any{"err": err})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusInternalServerError, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
