package events

// TeaserSize es la cantidad de eventos que muestra la home.
const TeaserSize = 2

// Partition separa en próximos (todo lo que no es past) y pasados,
// conservando el orden recibido.
func Partition(in []Event) (upcoming, past []Event) {
	for _, e := range in {
		if e.IsPast() {
			past = append(past, e)
			continue
		}
		upcoming = append(upcoming, e)
	}
	return upcoming, past
}

// Teaser toma los primeros n de upcoming ++ past.
func Teaser(in []Event, n int) []Event {
	if n <= 0 {
		return nil
	}
	upcoming, past := Partition(in)
	all := append(upcoming, past...)
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// FilterByStatus devuelve solo los eventos con ese status.
func FilterByStatus(in []Event, s Status) []Event {
	out := make([]Event, 0, len(in))
	for _, e := range in {
		if e.Status == s {
			out = append(out, e)
		}
	}
	return out
}
