//go:build pi

package button

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"time"
)

// Watcher owns the physical button pin and feeds edges into a Monitor.
type Watcher struct {
	pin     gpio.PinIO
	monitor *Monitor
}

// NewWatcher configures the named pin as a pulled up input. Interrupts are not
// armed until EnableInterrupts is called, so no events flow yet.
func NewWatcher(pinName string, activeHigh bool, pub Publisher) (*Watcher, error) {
	log.Infoln("Initializing button handler")

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReady, err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("%w: no pin named %v", ErrNotReady, pinName)
	}

	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigure, err)
	}

	active := gpio.Low
	if activeHigh {
		active = gpio.High
	}

	w := &Watcher{pin: pin}
	w.monitor = NewMonitor(levelPin{pin: pin, active: active}, pub)
	return w, nil
}

// EnableInterrupts arms both edge triggers on the pin and starts watching.
func (w *Watcher) EnableInterrupts() error {
	if err := w.pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return fmt.Errorf("%w: %v", ErrInterrupt, err)
	}

	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	for {
		// wait for the edge
		if !w.pin.WaitForEdge(time.Second) {
			continue
		}
		w.monitor.HandleEdge()
	}
}

// levelPin maps the electrical level of the line to a logical one. With the
// default wiring the button shorts the pulled up line to ground, so low means
// held.
type levelPin struct {
	pin    gpio.PinIO
	active gpio.Level
}

func (p levelPin) Held() bool {
	return p.pin.Read() == p.active
}
