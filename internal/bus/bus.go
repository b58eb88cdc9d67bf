// Package bus fans button events out to any number of subscribers. Publishing
// never blocks: a subscriber that has fallen behind gets events dropped rather
// than slowing down the edge delivery path.
package bus

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/skaland/buttond/internal/button"
)

const subscriberBuffer = 5

type Bus struct {
	mu     sync.Mutex
	subs   []chan button.Event
	closed bool
}

func New() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber and returns its event channel. The
// channel has a small buffer to absorb bursts; consumers are expected to keep
// up. Subscribing to a closed bus returns an already closed channel.
func (b *Bus) Subscribe() <-chan button.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := make(chan button.Event, subscriberBuffer)
	if b.closed {
		close(c)
		return c
	}
	b.subs = append(b.subs, c)
	return c
}

// Publish hands the event to every subscriber that has room for it.
func (b *Bus) Publish(e button.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, c := range b.subs {
		select {
		case c <- e:
		default:
			log.Warnf("Dropping %v event, subscriber is not keeping up", e)
		}
	}
}

// Close terminates all subscriber channels. Publishing afterwards is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, c := range b.subs {
		close(c)
	}
	b.subs = nil
}
