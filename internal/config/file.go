package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/typedrift/internal/loop"
	loopconfig "github.com/tomz197/typedrift/internal/loop/config"
	"github.com/tomz197/typedrift/internal/object"
)

// ErrEmptyVocabulary is returned when the settings hold no usable word.
var ErrEmptyVocabulary = errors.New("vocabulary has no words")

// Settings holds the game settings read from a YAML file.
type Settings struct {
	Vocabulary []string   `yaml:"vocabulary"`
	Difficulty Difficulty `yaml:"difficulty"`
	FPS        int        `yaml:"fps"`        // Draw rate cap
	TickRate   int        `yaml:"tick_rate"`  // Terminal client loop rate
	TopOffset  float64    `yaml:"top_offset"` // Pixels reserved for the HUD
	Debug      bool       `yaml:"debug"`      // Show the timing overlay
}

// Difficulty mirrors loop.Curve. Delays accept Go duration strings ("2s", "1500ms").
type Difficulty struct {
	BaseDelay  time.Duration `yaml:"base_delay"`
	BaseSpeed  float64       `yaml:"base_speed"`
	DelayTiers []Tier        `yaml:"delay_tiers"`
	SpeedTiers []Tier        `yaml:"speed_tiers"`
}

// Tier mirrors loop.Tier.
type Tier struct {
	From       int     `yaml:"from"`
	Multiplier float64 `yaml:"multiplier"`
}

// Default returns the built-in settings.
func Default() Settings {
	curve := loop.DefaultCurve()
	return Settings{
		Vocabulary: object.DefaultVocabulary(),
		Difficulty: Difficulty{
			BaseDelay:  curve.BaseDelay,
			BaseSpeed:  curve.BaseSpeed,
			DelayTiers: fromTiers(curve.DelayTiers),
			SpeedTiers: fromTiers(curve.SpeedTiers),
		},
		FPS:       loopconfig.TargetFPS,
		TickRate:  loopconfig.DefaultTickRate,
		TopOffset: loopconfig.TopOffset,
	}
}

// Load reads settings from a YAML file. Fields missing from the file keep
// their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// FromEnv loads the file named by TYPEDRIFT_CONFIG, or the defaults when it
// is unset. TYPEDRIFT_DEBUG overrides the debug flag.
func FromEnv() (Settings, error) {
	s := Default()
	if path := GetEnv("TYPEDRIFT_CONFIG", ""); path != "" {
		var err error
		if s, err = Load(path); err != nil {
			return Settings{}, err
		}
	}
	s.Debug = GetEnvBool("TYPEDRIFT_DEBUG", s.Debug)
	return s, nil
}

// Validate checks the vocabulary, the difficulty curve and the rates.
func (s Settings) Validate() error {
	if object.NewPool(s.Vocabulary).Len() == 0 {
		return ErrEmptyVocabulary
	}
	if err := s.Curve().Validate(); err != nil {
		return err
	}
	if s.FPS <= 0 {
		return fmt.Errorf("fps %d must be positive", s.FPS)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("tick_rate %d must be positive", s.TickRate)
	}
	if s.TopOffset < 0 {
		return fmt.Errorf("top_offset %v must not be negative", s.TopOffset)
	}
	return nil
}

// Curve returns the difficulty curve described by the settings.
func (s Settings) Curve() loop.Curve {
	return loop.Curve{
		BaseDelay:  s.Difficulty.BaseDelay,
		BaseSpeed:  s.Difficulty.BaseSpeed,
		DelayTiers: toTiers(s.Difficulty.DelayTiers),
		SpeedTiers: toTiers(s.Difficulty.SpeedTiers),
	}
}

// GameOptions returns the options that configure a loop.Game.
func (s Settings) GameOptions() []loop.Option {
	return []loop.Option{
		loop.WithCurve(s.Curve()),
		loop.WithFPS(s.FPS),
		loop.WithTopOffset(s.TopOffset),
		loop.WithDebug(s.Debug),
	}
}

// NewPool returns a fresh vocabulary pool. Each game needs its own.
func (s Settings) NewPool() *object.Pool {
	return object.NewPool(s.Vocabulary)
}

func toTiers(tiers []Tier) []loop.Tier {
	out := make([]loop.Tier, len(tiers))
	for i, t := range tiers {
		out[i] = loop.Tier{From: t.From, Multiplier: t.Multiplier}
	}
	return out
}

func fromTiers(tiers []loop.Tier) []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		out[i] = Tier{From: t.From, Multiplier: t.Multiplier}
	}
	return out
}
