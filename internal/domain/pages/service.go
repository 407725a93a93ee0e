// Package pages arma cada página: carga en paralelo lo que necesita,
// filtra y entrega la vista al renderer.
package pages

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"ai-nadsenci-web/internal/domain/content"
	"ai-nadsenci-web/internal/domain/events"
	"ai-nadsenci-web/internal/web/lightbox"
	"ai-nadsenci-web/internal/web/render"
)

// ErrNotFound: el id no está en el índice o el evento no carga.
var ErrNotFound = errors.New("pages: event not found")

type Service struct {
	loader *content.Loader
}

func NewService(loader *content.Loader) *Service {
	return &Service{loader: loader}
}

func (s *Service) Home(ctx context.Context) (render.HomeView, error) {
	var (
		v   render.HomeView
		evs []events.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		v.Texts, err = s.loader.LoadTexts(gctx)
		return err
	})
	g.Go(func() error {
		evs = s.loader.LoadEvents(gctx)
		return nil
	})
	g.Go(func() (err error) {
		v.Organizers, err = s.loader.LoadOrganizers(gctx)
		return err
	})
	g.Go(func() (err error) {
		v.Partners, err = s.loader.LoadPartners(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return render.HomeView{}, err
	}

	v.Title = content.SiteName
	v.Events = events.Teaser(evs, events.TeaserSize)
	return v, nil
}

func (s *Service) Listing(ctx context.Context) (render.ListingView, error) {
	var (
		v   render.ListingView
		evs []events.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		v.Texts, err = s.loader.LoadTexts(gctx)
		return err
	})
	g.Go(func() error {
		evs = s.loader.LoadEvents(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return render.ListingView{}, err
	}

	v.Title = listingTitle(v.Texts)
	v.Subpage = true
	v.Page = v.Texts.EventsPageOrDefault()
	v.Upcoming, v.Past = events.Partition(evs)
	return v, nil
}

// DetailQuery son los parámetros de /akce/detail.html.
type DetailQuery struct {
	ID string
	// Photo abre el lightbox en ese índice; -1 = cerrado.
	Photo int
	// Key es un input del lightbox (ArrowLeft, ArrowRight, Escape...).
	Key lightbox.Input
}

func ParseDetailQuery(get func(string) string) DetailQuery {
	q := DetailQuery{ID: get("id"), Photo: -1, Key: lightbox.Input(get("key"))}
	if n, err := strconv.Atoi(get("photo")); err == nil && n >= 0 {
		q.Photo = n
	}
	if dx, err := strconv.Atoi(get("swipe")); err == nil && q.Key == "" {
		if in, ok := lightbox.SwipeInput(dx); ok {
			q.Key = in
		}
	}
	return q
}

// Detail carga textos primero y después índice + evento. Devuelve
// ErrNotFound (con la vista de not-found armada) si el id no está en el
// índice, el índice no carga o el evento no carga.
func (s *Service) Detail(ctx context.Context, q DetailQuery) (render.DetailView, render.NotFoundView, error) {
	texts, err := s.loader.LoadTexts(ctx)
	if err != nil {
		return render.DetailView{}, render.NotFoundView{}, err
	}
	notFound := render.NotFoundView{
		Chrome: render.Chrome{Subpage: true, Texts: texts},
		Detail: texts.EventDetailOrDefault(),
	}
	notFound.Title = notFound.Detail.NotFoundTitle + " | " + content.SiteName

	if !content.ValidID(q.ID) {
		return render.DetailView{}, notFound, ErrNotFound
	}

	var (
		ids []string
		ev  events.Event
		ok  bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ids, err = s.loader.LoadIndex(gctx)
		return err
	})
	g.Go(func() error {
		ev, ok = s.loader.LoadEvent(gctx, q.ID)
		return nil
	})
	// un índice que no carga equivale a "no está en el índice"
	if err := g.Wait(); err != nil || !ok || !slices.Contains(ids, q.ID) {
		return render.DetailView{}, notFound, ErrNotFound
	}

	gallery := ev.GalleryURLs()
	lb := lightbox.New(len(gallery))
	if q.Photo >= 0 {
		lb = lb.OpenAt(q.Photo)
	}
	if q.Key != "" {
		lb = lb.Dispatch(q.Key)
	}

	return render.DetailView{
		Chrome:   render.Chrome{Title: ev.Title + " | " + content.SiteName, Subpage: true, Texts: texts},
		Event:    ev,
		Detail:   notFound.Detail,
		Gallery:  gallery,
		Lightbox: lb,
	}, notFound, nil
}

func listingTitle(t content.Texts) string {
	if t.Events != nil && t.Events.Heading != "" {
		return t.Events.Heading + " | " + content.SiteName
	}
	return content.SiteName
}
