package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/skaland/buttond/internal/button"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Client publishes to a real broker.
type Client struct {
	client paho.Client
	topic  string
}

// Connect dials the broker and keeps the connection alive with automatic
// retries from there on.
func Connect(broker, topic string) (*Client, error) {
	if topic == "" {
		topic = DefaultTopic
	}

	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("buttond").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to %v", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %v: %w", broker, err)
	}

	return &Client{client: client, topic: topic}, nil
}

// Publish sends the event at QoS 0. Button events are ephemeral; a missed one
// is not worth a redelivery.
func (c *Client) Publish(e button.Event, at time.Time) error {
	body, err := formatPayload(e, at)
	if err != nil {
		return err
	}

	token := c.client.Publish(c.topic, 0, false, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("timed out publishing to %v", c.topic)
	}
	return token.Error()
}

func (c *Client) Close() error {
	c.client.Disconnect(1000)
	return nil
}
