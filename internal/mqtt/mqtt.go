// Package mqtt forwards button events to an MQTT broker, for consumers that
// live outside the process.
package mqtt

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/skaland/buttond/internal/button"
)

// DefaultTopic is used when the configuration does not name one.
const DefaultTopic = "buttond/events"

// Publisher sends a single button event to the broker.
type Publisher interface {
	Publish(e button.Event, at time.Time) error
	Close() error
}

type payload struct {
	Event string `json:"event"`
	Time  string `json:"time"`
}

func formatPayload(e button.Event, at time.Time) ([]byte, error) {
	return json.Marshal(payload{
		Event: e.String(),
		Time:  at.UTC().Format(time.RFC3339),
	})
}

// Forward drains events into the publisher until the channel is closed. A
// failed publish is logged and dropped; the broker connection retries on its
// own.
func Forward(events <-chan button.Event, pub Publisher) {
	for e := range events {
		if err := pub.Publish(e, time.Now()); err != nil {
			log.Warnf("Unable to publish %v event over MQTT: %v", e, err)
		}
	}
	log.Debug("Event bus closed, stopping MQTT forwarding")
}
