// Package render convierte vistas armadas por los controllers en HTML.
// Cada página es layout + parciales + un template "content".
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"ai-nadsenci-web/internal/domain/content"
	"ai-nadsenci-web/internal/domain/events"
	"ai-nadsenci-web/internal/web/lightbox"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	PageHome     = "home"
	PageListing  = "listing"
	PageDetail   = "detail"
	PageNotFound = "notfound"
	PageShell    = "shell"
)

var pageNames = []string{PageHome, PageListing, PageDetail, PageNotFound, PageShell}

// Chrome es lo común a todas las páginas: navegación, footer, título.
type Chrome struct {
	Title   string
	Subpage bool
	Texts   content.Texts
}

type HomeView struct {
	Chrome
	Events     []events.Event
	Organizers []content.Organizer
	Partners   []content.Partner
}

type ListingView struct {
	Chrome
	Page     content.EventsPage
	Upcoming []events.Event
	Past     []events.Event
}

type DetailView struct {
	Chrome
	Event    events.Event
	Detail   content.EventDetail
	Gallery  []string
	Lightbox lightbox.State
}

type NotFoundView struct {
	Chrome
	Detail content.EventDetail
}

// navView y footerView son los datos de los parciales del layout.
type navView struct {
	Subpage bool
	Mobile  bool
	Links   []content.Link
}

type footerView struct {
	Subpage bool
	Footer  *content.Footer
}

// cardView es lo que recibe el parcial "event-card".
type cardView struct {
	Event   events.Event
	Texts   *content.EventTexts
	Compact bool
}

type Renderer struct {
	base        string
	placeholder string
	pages       map[string]*template.Template
}

// New parsea todos los templates una sola vez. basePath ya normalizado.
func New(basePath string) (*Renderer, error) {
	r := &Renderer{
		base:        basePath,
		placeholder: basePath + "images/placeholder-event.svg",
		pages:       make(map[string]*template.Template, len(pageNames)),
	}

	root, err := template.New("root").Funcs(r.funcs()).ParseFS(templateFS, "templates/layout.tmpl", "templates/partials.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse layout: %w", err)
	}

	for _, name := range pageNames {
		t, err := root.Clone()
		if err != nil {
			return nil, fmt.Errorf("render: clone for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Home(w io.Writer, v HomeView) error         { return r.render(w, PageHome, v) }
func (r *Renderer) Listing(w io.Writer, v ListingView) error   { return r.render(w, PageListing, v) }
func (r *Renderer) Detail(w io.Writer, v DetailView) error     { return r.render(w, PageDetail, v) }
func (r *Renderer) NotFound(w io.Writer, v NotFoundView) error { return r.render(w, PageNotFound, v) }
func (r *Renderer) Shell(w io.Writer, v Chrome) error          { return r.render(w, PageShell, v) }

// render ejecuta a un buffer: si falla no queda HTML a medias en w.
func (r *Renderer) render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// asset resuelve un path del sitio contra base. URLs absolutas pasan tal cual.
func (r *Renderer) asset(p string) string {
	if strings.Contains(p, "://") {
		return p
	}
	return r.base + strings.TrimPrefix(p, "/")
}

// Placeholder es la imagen para eventos sin portada.
func (r *Renderer) Placeholder() string { return r.placeholder }

func (r *Renderer) DetailURL(id string) string {
	return r.base + "akce/detail.html?id=" + url.QueryEscape(id)
}

func (r *Renderer) PhotoURL(id string, index int) string {
	return r.DetailURL(id) + "&photo=" + strconv.Itoa(index)
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"base":  func() string { return r.base },
		"asset": r.asset,
		// en subpáginas los anchors de la home pasan a {base}#anchor
		"navHref": func(subpage bool, href string) string {
			if subpage && strings.HasPrefix(href, "#") {
				return r.base + href
			}
			return href
		},
		"firstWord": func(s string) string {
			first, _, _ := strings.Cut(s, " ")
			return first
		},
		"restWords": func(s string) string {
			_, rest, _ := strings.Cut(s, " ")
			return rest
		},
		"cover":     func(e events.Event) string { return e.CoverURL(r.placeholder) },
		"detailURL": r.DetailURL,
		"photoURL":  r.PhotoURL,
		"inc":       func(i int) int { return i + 1 },
		"badge":     badgeClass,
		"heroCTA":   heroCTAClass,
		"partnerCTA": func(style string) string {
			if style == "secondary" {
				return "text-gray-600 hover:text-blue-700 underline"
			}
			return "border-2 border-blue-700 text-blue-700 hover:bg-blue-50 px-6 py-3 rounded-lg font-medium"
		},
		"card": func(e events.Event, t *content.EventTexts, compact bool) cardView {
			return cardView{Event: e, Texts: t, Compact: compact}
		},
		"statusLabel": func(t *content.EventTexts, s events.Status) string {
			return t.StatusLabel(string(s))
		},
		"navData": func(subpage bool, links []content.Link, mobile bool) navView {
			return navView{Subpage: subpage, Mobile: mobile, Links: links}
		},
		"footerData": func(subpage bool, f *content.Footer) footerView {
			return footerView{Subpage: subpage, Footer: f}
		},
	}
}

func badgeClass(s events.Status) string {
	switch s {
	case events.StatusPast:
		return "bg-gray-700"
	case events.StatusSoldOut:
		return "bg-red-700"
	default:
		return "bg-green-700"
	}
}

func heroCTAClass(style string) string {
	switch style {
	case "filled":
		return "bg-blue-700 text-white hover:bg-blue-800 shadow-lg hover:shadow-xl"
	case "outline":
		return "border-2 border-blue-700 text-blue-700 hover:bg-blue-50"
	default:
		return "text-gray-600 hover:text-blue-700 underline decoration-2 underline-offset-4"
	}
}
