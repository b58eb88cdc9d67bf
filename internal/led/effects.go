package led

import (
	log "github.com/sirupsen/logrus"
	"time"
)

// Blink shows the color as a single short pulse.
func (l *Controller) Blink(color uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	log.Debugf("Blinking color %06x", color)

	l.setColor(color)
	<-time.After(100 * time.Millisecond)
	l.clear()
}

// Flash is the triple blink used for long presses.
func (l *Controller) Flash(color uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	log.Infof("Flashing color %06x", color)

	l.setColor(color)
	<-time.After(250 * time.Millisecond)
	l.clear()
	<-time.After(40 * time.Millisecond)
	l.setColor(color)
	<-time.After(100 * time.Millisecond)
	l.clear()
	<-time.After(40 * time.Millisecond)
	l.setColor(color)
	<-time.After(100 * time.Millisecond)
	l.clear()

	log.Debug("Flashing done...")
}
