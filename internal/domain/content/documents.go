package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ai-nadsenci-web/internal/domain/events"
)

const (
	textsPath      = "texts.json"
	organizersPath = "organizers.json"
	partnersPath   = "partners.json"
	indexPath      = "events/index.json"
)

func eventDir(id string) string     { return "events/" + id + "/" }
func eventDocPath(id string) string { return eventDir(id) + "event.json" }

// indexDocument: un id vacío o inválido no invalida el índice; LoadEvent
// lo trata como ausente.
type indexDocument struct {
	Events []string `json:"events" validate:"required"`
}

type mediaDocument struct {
	Cover   string   `json:"cover"`
	Gallery []string `json:"gallery" validate:"dive,required"`
	Recap   string   `json:"recap"`
}

// eventDocument es el esquema de events/{id}/event.json.
// El id del documento es opcional; manda el del índice.
type eventDocument struct {
	ID              string         `json:"id"`
	Title           string         `json:"title" validate:"required"`
	Description     string         `json:"description"`
	LongDescription string         `json:"longDescription"`
	Date            string         `json:"date" validate:"required"`
	Time            string         `json:"time"`
	Location        string         `json:"location"`
	Price           string         `json:"price"`
	Attendees       int            `json:"attendees" validate:"gte=0"`
	Status          string         `json:"status" validate:"required,oneof=upcoming sold-out past"`
	LumaLink        string         `json:"lumaLink"`
	RecapText       string         `json:"recapText"`
	Media           *mediaDocument `json:"media"`
}

func (d eventDocument) toEvent(id, basePath string) events.Event {
	e := events.Event{
		ID:              id,
		Title:           d.Title,
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Date:            strings.TrimSpace(d.Date),
		Time:            d.Time,
		Location:        d.Location,
		Price:           d.Price,
		Attendees:       d.Attendees,
		Status:          events.Status(d.Status),
		TicketLink:      d.LumaLink,
		RecapText:       d.RecapText,
		BasePath:        basePath,
	}
	if d.Media != nil {
		e.Media = &events.Media{
			Cover:   d.Media.Cover,
			Gallery: append([]string(nil), d.Media.Gallery...),
			Recap:   d.Media.Recap,
		}
	}
	return e
}

type organizersDocument struct {
	Organizers []Organizer `json:"organizers" validate:"dive"`
}

type partnersDocument struct {
	Partners []Partner `json:"partners" validate:"dive"`
}

// decode hace json.Unmarshal y valida con los tags de validator.
func decode(v *validator.Validate, raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := v.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
