package button

import (
	log "github.com/sirupsen/logrus"
	"time"
)

// LongPressThreshold is how long the button needs to be held for the press to
// count as long. A press held for exactly the threshold is long.
const LongPressThreshold = 3000 * time.Millisecond

// Pin reports the logical level of the button line. True means the button is
// currently held down, whatever the electrical polarity of the wiring.
type Pin interface {
	Held() bool
}

// Publisher takes classified events off the monitor's hands. Publish must not
// block, since it is called on the edge delivery path.
type Publisher interface {
	Publish(Event)
}

// Monitor classifies raw edge notifications into Pressed, Released and
// LongPress events. It is a two state machine, idle or pressed, keyed off the
// pin level at the time each edge is delivered. HandleEdge must only ever be
// called from a single goroutine; the monitor does no locking of its own.
type Monitor struct {
	pin Pin
	pub Publisher
	now func() time.Time

	held   bool
	heldAt time.Time
}

func NewMonitor(pin Pin, pub Publisher) *Monitor {
	return &Monitor{pin: pin, pub: pub, now: time.Now}
}

// HandleEdge is invoked once per physical transition on the line. The edge
// itself carries no payload; the pin level decides press or release.
func (m *Monitor) HandleEdge() {
	if m.pin.Held() {
		m.press()
	} else {
		m.release()
	}
}

func (m *Monitor) press() {
	if m.held {
		// Two press edges without a release in between. Keep the first
		// timestamp so the eventual release sees the full hold.
		log.Debug("Ignoring duplicate press edge")
		return
	}
	m.held = true
	m.heldAt = m.now()
	log.Debug("Button pressed")
	m.pub.Publish(Pressed)
}

func (m *Monitor) release() {
	if !m.held {
		log.Debug("Ignoring release edge while idle")
		return
	}
	duration := m.now().Sub(m.heldAt)
	m.held = false
	log.Debugf("Button released after %v", duration)
	m.pub.Publish(Released)
	if duration >= LongPressThreshold {
		log.Infof("Long press detected (%v)", duration)
		m.pub.Publish(LongPress)
	}
}
