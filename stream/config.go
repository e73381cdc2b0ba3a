package stream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of a show.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topics   struct {
			Stream string `yaml:"stream"`
			Events string `yaml:"events"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip struct {
		Pixels         int     `yaml:"pixels"`
		FrameRate      float64 `yaml:"frameRate"`
		CycleSecs      float64 `yaml:"cycleSecs"`
		TransitionSecs float64 `yaml:"transitionSecs"`
		Feather        float64 `yaml:"feather"`
	} `yaml:"strip"`
	Api struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`
	Verbose  bool          `yaml:"verbose"`
	Gradient GradientTable `yaml:"gradient"`
	Scenes   []SceneConfig `yaml:"scenes"`
}

// SceneConfig describes a set of segments and the cues that tween them.
type SceneConfig struct {
	Name       string          `yaml:"name"`
	Background string          `yaml:"background"`
	LoopSecs   float64         `yaml:"loopSecs"`
	Segments   []SegmentConfig `yaml:"segments"`
	Cues       []CueConfig     `yaml:"cues"`
}

// SegmentConfig is the initial state of a Segment.
type SegmentConfig struct {
	Name       string   `yaml:"name"`
	Position   float64  `yaml:"position"`
	Length     float64  `yaml:"length"`
	Brightness *float64 `yaml:"brightness"`
	Colour     string   `yaml:"colour"`
}

// CueConfig declares a tween fired At seconds into the scene. Value is a number, a
// list of numbers or a hex colour; Gradient picks a colour from the gradient instead.
type CueConfig struct {
	At       float64     `yaml:"at"`
	Segment  string      `yaml:"segment"`
	Property string      `yaml:"property"`
	Value    interface{} `yaml:"value"`
	Gradient *float64    `yaml:"gradient"`
	Duration float64     `yaml:"duration"`
	Speed    float64     `yaml:"speed"`
	Delay    float64     `yaml:"delay"`
	Ease     string      `yaml:"ease"`
	Relative bool        `yaml:"relative"`
	From     bool        `yaml:"from"`
}

// LoadConfig reads, defaults and validates the YAML config at path.
func LoadConfig(path string) (Config, error) {
	var c Config
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// SetDefaults fills in unset options.
func (c *Config) SetDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtween"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Strip.Pixels == 0 {
		c.Strip.Pixels = 500
	}
	if c.Strip.FrameRate == 0 {
		c.Strip.FrameRate = 30
	}
	if c.Strip.CycleSecs == 0 {
		c.Strip.CycleSecs = 60
	}
	if c.Strip.TransitionSecs == 0 {
		c.Strip.TransitionSecs = 5
	}
	if c.Strip.Feather == 0 {
		c.Strip.Feather = 3
	}
	if c.Api.Static == "" {
		c.Api.Static = "client/dist"
	}
	if len(c.Gradient) == 0 {
		c.Gradient = DefaultGradient
	}
}

// Validate checks the config for values the show cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Strip.Pixels <= 0 || c.Strip.Pixels > 0xffff:
		return fmt.Errorf("%w: strip.pixels %d", ErrInvalidConfig, c.Strip.Pixels)
	case c.Strip.FrameRate <= 0:
		return fmt.Errorf("%w: strip.frameRate %g", ErrInvalidConfig, c.Strip.FrameRate)
	case c.Strip.CycleSecs < 0 || c.Strip.TransitionSecs < 0:
		return fmt.Errorf("%w: negative cycle or transition time", ErrInvalidConfig)
	case len(c.Scenes) == 0:
		return fmt.Errorf("%w: no scenes", ErrInvalidConfig)
	}
	for _, s := range c.Scenes {
		if len(s.Segments) == 0 {
			return fmt.Errorf("%w: scene %q has no segments", ErrInvalidConfig, s.Name)
		}
	}
	return nil
}
