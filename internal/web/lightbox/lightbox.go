// Package lightbox modela el visor de la galería: índice actual y si está
// abierto. Las transiciones son puras; Dispatch es el único punto de entrada
// para inputs (teclado, botones, swipe).
package lightbox

type Input string

const (
	KeyEscape     Input = "Escape"
	KeyArrowLeft  Input = "ArrowLeft"
	KeyArrowRight Input = "ArrowRight"
	SwipeLeft     Input = "swipe-left"  // dedo hacia la izquierda: siguiente
	SwipeRight    Input = "swipe-right" // dedo hacia la derecha: anterior
	ButtonClose   Input = "close"
	ButtonPrev    Input = "prev"
	ButtonNext    Input = "next"
)

// SwipeThreshold en px, igual que el umbral táctil del sitio.
const SwipeThreshold = 50

type State struct {
	Count   int
	Current int
	Open    bool
}

func New(count int) State {
	if count < 0 {
		count = 0
	}
	return State{Count: count}
}

func (s State) wrap(i int) int {
	if s.Count == 0 {
		return 0
	}
	return ((i % s.Count) + s.Count) % s.Count
}

// OpenAt abre en i (con wrap). Sin imágenes queda cerrado.
func (s State) OpenAt(i int) State {
	if s.Count == 0 {
		return s
	}
	s.Current = s.wrap(i)
	s.Open = true
	return s
}

func (s State) Close() State {
	s.Open = false
	return s
}

func (s State) Next() State {
	if s.Count == 0 {
		return s
	}
	s.Current = s.wrap(s.Current + 1)
	return s
}

func (s State) Previous() State {
	if s.Count == 0 {
		return s
	}
	s.Current = s.wrap(s.Current - 1)
	return s
}

// Dispatch aplica un input. Cerrado, los inputs se ignoran.
func (s State) Dispatch(in Input) State {
	if !s.Open {
		return s
	}
	switch in {
	case KeyEscape, ButtonClose:
		return s.Close()
	case KeyArrowLeft, ButtonPrev, SwipeRight:
		return s.Previous()
	case KeyArrowRight, ButtonNext, SwipeLeft:
		return s.Next()
	default:
		return s
	}
}

// SwipeInput traduce el desplazamiento horizontal de un touch.
func SwipeInput(dx int) (Input, bool) {
	switch {
	case dx > SwipeThreshold:
		return SwipeRight, true
	case dx < -SwipeThreshold:
		return SwipeLeft, true
	default:
		return "", false
	}
}

// Position es 1-based, para el contador "3 / 12".
func (s State) Position() int { return s.Current + 1 }
