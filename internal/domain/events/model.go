package events

import "strings"

// Media agrupa los paths relativos a BasePath.
type Media struct {
	Cover   string
	Gallery []string
	Recap   string // video mp4
}

// Event es un valor inmutable una vez que sale del loader.
type Event struct {
	ID              string
	Title           string
	Description     string
	LongDescription string

	Date     string // "D. M. YYYY"
	Time     string
	Location string
	Price    string

	Attendees int
	Status    Status

	TicketLink string
	RecapText  string
	Media      *Media

	// BasePath lo escribe solo el loader: "{base}content/events/{id}/".
	BasePath string
}

func (e Event) IsPast() bool    { return e.Status == StatusPast }
func (e Event) IsSoldOut() bool { return e.Status == StatusSoldOut }

// IsOpen: se puede comprar entrada.
func (e Event) IsOpen() bool { return !e.IsPast() && !e.IsSoldOut() }

// CoverURL resuelve la portada o devuelve placeholder.
func (e Event) CoverURL(placeholder string) string {
	if e.Media == nil || strings.TrimSpace(e.Media.Cover) == "" {
		return placeholder
	}
	return e.BasePath + e.Media.Cover
}

// GalleryURLs solo aplica a eventos pasados.
func (e Event) GalleryURLs() []string {
	if !e.IsPast() || e.Media == nil || len(e.Media.Gallery) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.Media.Gallery))
	for _, img := range e.Media.Gallery {
		out = append(out, e.BasePath+img)
	}
	return out
}

func (e Event) RecapVideoURL() string {
	if !e.IsPast() || e.Media == nil || strings.TrimSpace(e.Media.Recap) == "" {
		return ""
	}
	return e.BasePath + e.Media.Recap
}

// Paragraphs usa la descripción larga y cae a la corta.
func (e Event) Paragraphs() []string {
	d := e.LongDescription
	if d == "" {
		d = e.Description
	}
	return splitParagraphs(d)
}

func (e Event) RecapParagraphs() []string {
	if !e.IsPast() {
		return nil
	}
	return splitParagraphs(e.RecapText)
}

func splitParagraphs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
