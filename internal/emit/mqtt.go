// internal/emit/mqtt.go
package emit

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/u1and0/HealthLogger/internal/scan"
)

// MQTTOptions configures the optional broker sink.
type MQTTOptions struct {
	Server   string // e.g. tcp://localhost:1883
	ClientID string
	Topic    string
	Username string
	Password string
}

// MQTT publishes each record as a JSON payload. The append-only stdout log
// stays the durable store; this sink exists for remote live monitoring and
// is best effort.
type MQTT struct {
	client mqtt.Client
	topic  string
}

func NewMQTT(opts MQTTOptions) (*MQTT, error) {
	co := mqtt.NewClientOptions().AddBroker(opts.Server).SetClientID(opts.ClientID)
	if opts.Username != "" {
		co.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		co.SetPassword(opts.Password)
	}
	client := mqtt.NewClient(co)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &MQTT{client: client, topic: opts.Topic}, nil
}

// scanPayload is the wire form of one record.
type scanPayload struct {
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
	Values    []float64 `json:"values"`
}

func payload(rec scan.Record) scanPayload {
	return scanPayload{
		Severity:  rec.Severity.String(),
		Timestamp: rec.At,
		Values:    rec.Values,
	}
}

func (m *MQTT) Emit(rec scan.Record) error {
	b, err := json.Marshal(payload(rec))
	if err != nil {
		return err
	}
	token := m.client.Publish(m.topic, 0, false, b)
	token.Wait()
	return token.Error()
}

func (m *MQTT) Close() error {
	if m.client != nil {
		m.client.Disconnect(250)
	}
	return nil
}
