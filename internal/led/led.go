// Package led drives the ws281x ring around the button, used as visual
// feedback for presses.
package led

import "sync"

const (
	brightness = 90
	ledCount   = 24
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

type Controller struct {
	ws wsEngine
	mu sync.Mutex
}

func (l *Controller) setColor(color uint32) error {
	leds := l.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	return l.ws.Render()
}

func (l *Controller) clear() error {
	return l.setColor(0)
}

// Close blanks the ring and releases the engine.
func (l *Controller) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clear()
	l.ws.Fini()
}
