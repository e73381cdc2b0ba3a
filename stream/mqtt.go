package stream

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/tween"
)

// Publisher is the part of mqtt.Client used to send messages.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MqttSink sends frames as binary over MQTT to an ledrx device.
type MqttSink struct {
	client Publisher
	topic  string
}

// NewMqttSink creates an instance of an MqttSink publishing on topic.
func NewMqttSink(client Publisher, topic string) *MqttSink {
	m := new(MqttSink)
	m.client = client
	m.topic = topic
	return m
}

// SendFrame publishes a frame and waits for delivery.
func (m *MqttSink) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := m.client.Publish(m.topic, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", m.topic, err)
	}
	return nil
}

// OverwriteMessage is the JSON form of a tween overwrite event.
type OverwriteMessage struct {
	Type     string `json:"type"`
	Target   string `json:"target"`
	Property string `json:"property"`
	OldKind  string `json:"oldKind"`
	NewKind  string `json:"newKind"`
	OldTween string `json:"oldTween"`
	NewTween string `json:"newTween"`
	Killed   bool   `json:"killed"`
}

// EventPublisher publishes overwrite events over MQTT for diagnostics.
type EventPublisher struct {
	client Publisher
	topic  string
}

// NewEventPublisher creates an instance of an EventPublisher publishing on topic.
func NewEventPublisher(client Publisher, topic string) *EventPublisher {
	p := new(EventPublisher)
	p.client = client
	p.topic = topic
	return p
}

// Overwrite publishes ev without waiting for delivery. It is meant to be used as
// tween.Options.OnOverwrite.
func (p *EventPublisher) Overwrite(ev tween.OverwriteEvent) {
	msg := OverwriteMessage{
		Type:     "overwrite",
		Target:   fmt.Sprint(ev.Target),
		Property: ev.Property,
		OldKind:  ev.OldKind.String(),
		NewKind:  ev.NewKind.String(),
		OldTween: ev.OldTween.String(),
		NewTween: ev.NewTween.String(),
		Killed:   ev.Killed,
	}
	b, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to encode overwrite event: %v", err)
		return
	}
	p.client.Publish(p.topic, 0, false, b)
}
