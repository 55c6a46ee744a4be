// Package status publishes sensor state snapshots over MQTT.
package status

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	ov64a40 "github.com/swdee/go-ov64a40"
)

// DefaultTimeout bounds how long a publish waits for the broker
const DefaultTimeout = 2 * time.Second

// client is the subset of mqtt.Client the publisher needs
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher sends snapshots to <topic>/state
type Publisher struct {
	client  client
	topic   string
	timeout time.Duration

	disconnect func()
}

// Options configures the broker connection
type Options struct {
	Broker   string
	ClientID string
	Topic    string
}

// Connect connects to the broker and returns a publisher
func Connect(opts Options) (*Publisher, error) {

	mopts := mqtt.NewClientOptions().AddBroker(opts.Broker).SetClientID(opts.ClientID)
	mopts.SetKeepAlive(30 * time.Second)
	mopts.SetPingTimeout(5 * time.Second)
	mopts.SetAutoReconnect(true)

	c := mqtt.NewClient(mopts)

	token := c.Connect()

	if !token.WaitTimeout(DefaultTimeout) {
		return nil, fmt.Errorf("mqtt: connect to %s timed out", opts.Broker)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", opts.Broker, err)
	}

	p := newPublisher(c, opts.Topic)
	p.disconnect = func() { c.Disconnect(250) }

	return p, nil
}

func newPublisher(c client, topic string) *Publisher {
	return &Publisher{client: c, topic: topic, timeout: DefaultTimeout}
}

// StateTopic returns the topic snapshots are published to
func (p *Publisher) StateTopic() string {
	return p.topic + "/state"
}

// Publish sends the snapshot as retained JSON message
func (p *Publisher) Publish(snap ov64a40.Snapshot) error {

	msg, err := json.Marshal(snap)

	if err != nil {
		return fmt.Errorf("mqtt: encode snapshot: %w", err)
	}

	token := p.client.Publish(p.StateTopic(), 1, true, msg)

	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("mqtt: publish to %s timed out", p.StateTopic())
	}

	return token.Error()
}

// Close disconnects from the broker
func (p *Publisher) Close() {
	if p.disconnect != nil {
		p.disconnect()
	}
}
