package button

// Event is a classified button transition.
type Event int

const (
	Pressed Event = iota
	Released
	LongPress
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case LongPress:
		return "long press"
	}
	return "unknown"
}
