package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"ai-nadsenci-web/internal/domain/events"
	"ai-nadsenci-web/internal/platform/logger"
	"ai-nadsenci-web/internal/platform/metrics"
	"ai-nadsenci-web/internal/ports/source"
)

var (
	ErrMalformed = errors.New("content: malformed document")
	ErrIndex     = errors.New("content: event index unavailable")
	ErrInvalidID = errors.New("content: invalid event id")
)

type Options struct {
	// BasePath es el prefijo público ya normalizado ("/" o "/x/").
	BasePath string
	Logger   logger.Logger
	Metrics  *metrics.Metrics
	// Now es el reloj para fechas mal formadas; default time.Now.
	Now func() time.Time
}

// Loader lee y valida el árbol de contenido. Es el único que escribe
// Event.BasePath. No cachea ni reintenta: cada llamada vuelve a leer.
type Loader struct {
	src      source.Source
	basePath string
	log      logger.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	now      func() time.Time
}

func NewLoader(src source.Source, opts Options) *Loader {
	base := opts.BasePath
	if base == "" {
		base = "/"
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Loader{
		src:      src,
		basePath: base,
		log:      log.With(map[string]any{"component": "content"}),
		metrics:  opts.Metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}
}

// ContentURL es la URL pública de un documento o media del árbol.
func (l *Loader) ContentURL(path string) string {
	return l.basePath + "content/" + strings.TrimPrefix(path, "/")
}

// ValidID rechaza ids que saldrían de events/{id}/.
func ValidID(id string) bool {
	if strings.TrimSpace(id) == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\?#`) && !strings.Contains(id, "..")
}

func (l *Loader) fetch(ctx context.Context, kind, path string, out any) error {
	raw, err := l.src.Fetch(ctx, path)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			l.metrics.ContentFetch(kind, "not_found")
		} else {
			l.metrics.ContentFetch(kind, "error")
		}
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	if err := decode(l.validate, raw, out); err != nil {
		l.metrics.ContentFetch(kind, "malformed")
		return fmt.Errorf("decode %s: %w", path, err)
	}
	l.metrics.ContentFetch(kind, "ok")
	return nil
}

func (l *Loader) LoadTexts(ctx context.Context) (Texts, error) {
	var t Texts
	if err := l.fetch(ctx, "texts", textsPath, &t); err != nil {
		return Texts{}, err
	}
	return t, nil
}

func (l *Loader) LoadOrganizers(ctx context.Context) ([]Organizer, error) {
	var doc organizersDocument
	if err := l.fetch(ctx, "organizers", organizersPath, &doc); err != nil {
		return nil, err
	}
	return doc.Organizers, nil
}

func (l *Loader) LoadPartners(ctx context.Context) ([]Partner, error) {
	var doc partnersDocument
	if err := l.fetch(ctx, "partners", partnersPath, &doc); err != nil {
		return nil, err
	}
	return doc.Partners, nil
}

// LoadIndex devuelve los ids en el orden del índice.
func (l *Loader) LoadIndex(ctx context.Context) ([]string, error) {
	var doc indexDocument
	if err := l.fetch(ctx, "index", indexPath, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndex, err)
	}
	return doc.Events, nil
}

// LoadEvent lee events/{id}/event.json. Cualquier falla (no existe,
// JSON roto, esquema inválido, id inválido) es "ausente": ok=false.
func (l *Loader) LoadEvent(ctx context.Context, id string) (events.Event, bool) {
	if !ValidID(id) {
		l.log.Warn("rejected event id", map[string]any{"event_id": id, "err": ErrInvalidID})
		return events.Event{}, false
	}

	var doc eventDocument
	if err := l.fetch(ctx, "event", eventDocPath(id), &doc); err != nil {
		if errors.Is(err, source.ErrNotFound) {
			l.log.Debug("event not found", map[string]any{"event_id": id})
		} else {
			l.log.Error("failed to load event", map[string]any{"event_id": id, "err": err})
		}
		return events.Event{}, false
	}

	if doc.ID != "" && doc.ID != id {
		l.log.Warn("event id mismatch, using index id", map[string]any{"event_id": id, "doc_id": doc.ID})
	}

	return doc.toEvent(id, l.ContentURL(eventDir(id))), true
}

// LoadEvents carga el índice y todos sus eventos en paralelo. Si el
// índice falla devuelve lista vacía; los eventos ausentes se descartan.
// El resultado queda ordenado por fecha descendente.
func (l *Loader) LoadEvents(ctx context.Context) []events.Event {
	ids, err := l.LoadIndex(ctx)
	if err != nil {
		l.log.Error("error loading events", map[string]any{"err": err})
		return []events.Event{}
	}

	type slot struct {
		ev events.Event
		ok bool
	}
	// un slot por posición del índice: el orden de llegada no importa
	slots := make([]slot, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, ok := l.LoadEvent(ctx, id)
			slots[i] = slot{ev: ev, ok: ok}
		}()
	}
	wg.Wait()

	loaded := make([]events.Event, 0, len(ids))
	for _, s := range slots {
		if s.ok {
			loaded = append(loaded, s.ev)
		}
	}

	return events.SortByDate(loaded, l.now().UTC())
}
