package button

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testPin struct {
	held bool
}

func (p *testPin) Held() bool {
	return p.held
}

type recorder struct {
	events []Event
}

func (r *recorder) Publish(e Event) {
	r.events = append(r.events, e)
}

// harness drives the monitor with a scripted pin and a manual clock, so press
// durations are exact instead of wall clock dependent.
type harness struct {
	pin     *testPin
	rec     *recorder
	monitor *Monitor
	now     time.Time
}

func newHarness() *harness {
	h := &harness{
		pin: &testPin{},
		rec: &recorder{},
		now: time.Unix(1000, 0),
	}
	h.monitor = NewMonitor(h.pin, h.rec)
	h.monitor.now = func() time.Time { return h.now }
	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

func (h *harness) press() {
	h.pin.held = true
	h.monitor.HandleEdge()
}

func (h *harness) release() {
	h.pin.held = false
	h.monitor.HandleEdge()
}

func TestShortPress(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(80 * time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released}, h.rec.events)
}

func TestLongPress(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(4500 * time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released, LongPress}, h.rec.events)
}

func TestThresholdIsInclusive(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(LongPressThreshold)
	h.release()

	assert.Equal(t, []Event{Pressed, Released, LongPress}, h.rec.events)
}

func TestJustUnderThreshold(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(LongPressThreshold - time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released}, h.rec.events)
}

func TestRapidDoublePress(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(10 * time.Millisecond)
	h.release()
	h.advance(10 * time.Millisecond)
	h.press()
	h.advance(10 * time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released, Pressed, Released}, h.rec.events)
}

func TestCyclesAreIndependent(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(5 * time.Second)
	h.release()

	h.advance(time.Second)

	// the short press must not inherit anything from the long one
	h.press()
	h.advance(50 * time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released, LongPress, Pressed, Released}, h.rec.events)
}

func TestDuplicatePressEdgeIsIgnored(t *testing.T) {
	h := newHarness()

	h.press()
	h.advance(2 * time.Second)
	// a second press edge must neither emit nor restart the hold timer
	h.press()
	h.advance(1500 * time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released, LongPress}, h.rec.events)
}

func TestReleaseEdgeWhileIdleIsIgnored(t *testing.T) {
	h := newHarness()

	h.release()
	assert.Empty(t, h.rec.events)

	// and the next real cycle still classifies correctly
	h.press()
	h.advance(80 * time.Millisecond)
	h.release()

	assert.Equal(t, []Event{Pressed, Released}, h.rec.events)
}
