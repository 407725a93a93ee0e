package events

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Store es lo que la API necesita del loader de contenido.
type Store interface {
	LoadIndex(ctx context.Context) ([]string, error)
	LoadEvent(ctx context.Context, id string) (Event, bool)
	LoadEvents(ctx context.Context) []Event
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/api/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(store))
		er.Get("/{eventID}", getEventHandler(store))
	})
}

type mediaResponse struct {
	Cover   string   `json:"cover,omitempty"`
	Gallery []string `json:"gallery,omitempty"`
	Recap   string   `json:"recap,omitempty"`
}

// eventResponse representa un evento de la comunidad devuelto por la API.
// Las URLs de media ya vienen resueltas contra el base path.
type eventResponse struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	LongDescription string         `json:"long_description,omitempty"`
	Date            string         `json:"date"`
	Time            string         `json:"time,omitempty"`
	Location        string         `json:"location,omitempty"`
	Price           string         `json:"price,omitempty"`
	Attendees       int            `json:"attendees,omitempty"`
	Status          Status         `json:"status" enums:"upcoming,sold-out,past"`
	TicketLink      string         `json:"ticket_link,omitempty"`
	RecapText       string         `json:"recap_text,omitempty"`
	Media           *mediaResponse `json:"media,omitempty"`
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Lista los eventos del índice ordenados por fecha descendente. Los eventos que no cargan se omiten. Si el índice no carga devuelve lista vacía.
// @Tags events
// @Produce json
// @Param status query string false "Filtra por status (upcoming, sold-out, past)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "status inválido"
// @Router /api/events [get]
func listEventsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter Status
		if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
			filter = Status(v)
			if !filter.Valid() {
				http.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
		}

		items := store.LoadEvents(r.Context())
		if filter != "" {
			items = FilterByStatus(items, filter)
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Description Devuelve un evento del índice. Un id fuera del índice, inválido o cuyo documento no carga es 404.
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 404 {string} string "event not found"
// @Router /api/events/{eventID} [get]
func getEventHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")

		// Solo ids del índice; si el índice no carga, nada existe.
		ids, err := store.LoadIndex(r.Context())
		if err != nil || !slices.Contains(ids, eventID) {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		e, ok := store.LoadEvent(r.Context(), eventID)
		if !ok {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

func toEventResponse(e Event) eventResponse {
	out := eventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		LongDescription: e.LongDescription,
		Date:            e.Date,
		Time:            e.Time,
		Location:        e.Location,
		Price:           e.Price,
		Attendees:       e.Attendees,
		Status:          e.Status,
		TicketLink:      e.TicketLink,
		RecapText:       e.RecapText,
	}
	if e.Media != nil {
		out.Media = &mediaResponse{
			Cover:   e.CoverURL(""),
			Gallery: e.GalleryURLs(),
			Recap:   e.RecapVideoURL(),
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
