//go:build !pi

package button

import (
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Watcher is the simulated stand-in used off the Pi. Every SIGUSR1 toggles the
// pretend pin between held and released, so a full press cycle is two signals.
type Watcher struct {
	pin     *simPin
	monitor *Monitor
}

func NewWatcher(pinName string, activeHigh bool, pub Publisher) (*Watcher, error) {
	log.Infof("Initializing simulated button for %v, toggle it with SIGUSR1", pinName)

	pin := &simPin{}
	return &Watcher{
		pin:     pin,
		monitor: NewMonitor(pin, pub),
	}, nil
}

func (w *Watcher) EnableInterrupts() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGUSR1)

	go func() {
		for range sig {
			w.pin.held = !w.pin.held
			w.monitor.HandleEdge()
		}
	}()
	return nil
}

type simPin struct {
	held bool
}

func (p *simPin) Held() bool {
	return p.held
}
