package events

// Status es la clasificación de ciclo de vida que trae el contenido.
// No se calcula a partir de la fecha y no tiene transiciones.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusSoldOut  Status = "sold-out"
	StatusPast     Status = "past"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusSoldOut, StatusPast:
		return true
	default:
		return false
	}
}
