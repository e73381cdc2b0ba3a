package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/matt-g-everett/ledtween/tween"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakePublisher struct {
	messages []published
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	b, _ := payload.([]byte)
	p.messages = append(p.messages, published{topic, qos, retained, b})
	return &fakeToken{err: p.err}
}

func TestMqttSink_SendFrame(t *testing.T) {
	pub := new(fakePublisher)
	sink := NewMqttSink(pub, "home/xmastree/stream")
	f := NewFrame(2)
	f.Set(1, DefaultGradient.GetColor(0.5, 1, 0.5))

	if err := sink.SendFrame(f); err != nil {
		t.Fatalf("SendFrame() error = %v", err)
	}
	if len(pub.messages) != 1 {
		t.Fatalf("published %d messages, want 1", len(pub.messages))
	}
	msg := pub.messages[0]
	want, _ := f.MarshalBinary()
	if msg.topic != "home/xmastree/stream" || msg.qos != 2 || msg.retained || !bytes.Equal(msg.payload, want) {
		t.Errorf("message = %+v", msg)
	}
}

func TestMqttSink_PublishError(t *testing.T) {
	boom := errors.New("not connected")
	sink := NewMqttSink(&fakePublisher{err: boom}, "stream")
	if err := sink.SendFrame(NewFrame(1)); !errors.Is(err, boom) {
		t.Errorf("SendFrame() error = %v, want %v", err, boom)
	}
}

func TestEventPublisher_Overwrite(t *testing.T) {
	pub := new(fakePublisher)
	events := NewEventPublisher(pub, "home/xmastree/events")
	oldID, newID := uuid.New(), uuid.New()
	events.Overwrite(tween.OverwriteEvent{
		Target:   &Segment{Name: "bar"},
		Property: "colour",
		OldKind:  tween.KindColour,
		NewKind:  tween.KindColour,
		OldTween: oldID,
		NewTween: newID,
		Killed:   true,
	})

	if len(pub.messages) != 1 || pub.messages[0].topic != "home/xmastree/events" || pub.messages[0].qos != 0 {
		t.Fatalf("messages = %+v", pub.messages)
	}
	var msg OverwriteMessage
	if err := json.Unmarshal(pub.messages[0].payload, &msg); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	want := OverwriteMessage{
		Type:     "overwrite",
		Target:   "bar",
		Property: "colour",
		OldKind:  "Colour",
		NewKind:  "Colour",
		OldTween: oldID.String(),
		NewTween: newID.String(),
		Killed:   true,
	}
	if msg != want {
		t.Errorf("message = %+v, want %+v", msg, want)
	}
}
