package stream

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-g-everett/ledtween/tween"
)

const sampleConfig = `
mqtt:
  url: tcp://broker:1883
  topics:
    stream: tree/stream
    events: tree/events
strip:
  pixels: 120
  frameRate: 25
verbose: true
scenes:
  - name: sweep
    background: "#000005"
    loopSecs: 8
    segments:
      - name: bar
        length: 10
        colour: "#808080"
        brightness: 0.5
    cues:
      - at: 0
        segment: bar
        property: position
        value: 110
        speed: 20
        ease: inOutQuad
      - at: 2
        segment: bar
        property: colour
        gradient: 0.42
        duration: 1.5
      - at: 3
        segment: bar
        property: span
        value: [0, 4]
        duration: 2
        from: true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Topics.Events != "tree/events" || c.Mqtt.ClientID != "ledtween" {
		t.Errorf("mqtt = %+v", c.Mqtt)
	}
	if c.Strip.Pixels != 120 || c.Strip.FrameRate != 25 || c.Strip.CycleSecs != 60 {
		t.Errorf("strip = %+v", c.Strip)
	}
	if !c.Verbose || len(c.Gradient) != len(DefaultGradient) {
		t.Errorf("verbose = %v, gradient stops = %d", c.Verbose, len(c.Gradient))
	}
	if len(c.Scenes) != 1 || len(c.Scenes[0].Cues) != 3 {
		t.Fatalf("scenes = %+v", c.Scenes)
	}
	seg := c.Scenes[0].Segments[0]
	if seg.Brightness == nil || *seg.Brightness != 0.5 {
		t.Errorf("segment brightness = %v", seg.Brightness)
	}

	scene, err := NewScene(c.Scenes[0], c.Strip.Pixels, c.Strip.Feather, c.Gradient, tween.Options{})
	if err != nil {
		t.Fatalf("NewScene() from config error = %v", err)
	}
	scene.Advance(0)
	if scene.Playing() != 1 {
		t.Errorf("Playing() = %d, want 1", scene.Playing())
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "scenes: [")); err == nil {
		t.Error("malformed YAML accepted")
	}
	if _, err := LoadConfig(writeConfig(t, "strip:\n  pixels: 10\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("no scenes error = %v, want ErrInvalidConfig", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Scenes = []SceneConfig{{Name: "s", Segments: []SegmentConfig{{Name: "a"}}}}
		c.SetDefaults()
		return c
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative pixels", func(c *Config) { c.Strip.Pixels = -1 }, false},
		{"too many pixels", func(c *Config) { c.Strip.Pixels = 70000 }, false},
		{"zero frame rate", func(c *Config) { c.Strip.FrameRate = 0 }, false},
		{"negative transition", func(c *Config) { c.Strip.TransitionSecs = -1 }, false},
		{"empty scene", func(c *Config) { c.Scenes[0].Segments = nil }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
