package events

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

const dateSeparator = ". "

// ParseDate interpreta "D. M. YYYY". Si el string no tiene tres partes
// numéricas devuelve now: el evento ordena como el más reciente.
func ParseDate(s string, now time.Time) time.Time {
	parts := strings.Split(s, dateSeparator)
	if len(parts) < 3 {
		return now
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return now
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return now
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return now
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return now
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// SortByDate devuelve una copia ordenada por fecha descendente.
// Es estable: misma fecha conserva el orden de entrada (orden del índice).
func SortByDate(in []Event, now time.Time) []Event {
	type keyed struct {
		at time.Time
		ev Event
	}

	ks := make([]keyed, len(in))
	for i, e := range in {
		ks[i] = keyed{at: ParseDate(e.Date, now), ev: e}
	}

	slices.SortStableFunc(ks, func(a, b keyed) int {
		return b.at.Compare(a.at)
	})

	out := make([]Event, len(ks))
	for i, k := range ks {
		out[i] = k.ev
	}
	return out
}

// Sort es SortByDate con el reloj actual, tomado una sola vez.
func Sort(in []Event) []Event {
	return SortByDate(in, time.Now().UTC())
}
