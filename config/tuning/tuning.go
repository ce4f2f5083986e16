package tuning

import (
	"fmt"
	"os"

	"github.com/automoto/codesymphony/config"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory at startup
const DefaultFile = "codesymphony.yaml"

// Tuning is an optional overlay on top of the built-in config values.
// Nil fields keep the built-in value.
type Tuning struct {
	Combo struct {
		WindowMs       *int64   `yaml:"window_ms"`
		SkillThreshold *float64 `yaml:"skill_threshold"`
		GainPerHit     *float64 `yaml:"gain_per_hit"`
		ComboBonus     *float64 `yaml:"combo_bonus"`
		MaxBonus       *float64 `yaml:"max_bonus"`
	} `yaml:"combo"`
	Counter struct {
		WindowMs      *int64   `yaml:"window_ms"`
		PenaltySlowMs *int64   `yaml:"penalty_slow_ms"`
		ResolveCharge *float64 `yaml:"resolve_charge"`
	} `yaml:"counter"`
	BossSkill struct {
		MinGapMs    *int64 `yaml:"min_gap_ms"`
		GapJitterMs *int64 `yaml:"gap_jitter_ms"`
	} `yaml:"boss_skill"`
	Quality struct {
		AdjustEveryMs *int64   `yaml:"adjust_every_ms"`
		LowAboveMs    *float64 `yaml:"low_above_ms"`
		MedAboveMs    *float64 `yaml:"med_above_ms"`
		HighBelowMs   *float64 `yaml:"high_below_ms"`
		LowEffectCap  *int     `yaml:"low_effect_cap"`
	} `yaml:"quality"`
	Projectile struct {
		Speed *float64 `yaml:"speed"`
	} `yaml:"projectile"`
	Input struct {
		RepeatIntervalMs *float64 `yaml:"repeat_interval_ms"`
	} `yaml:"input"`
	Debug struct {
		ShowHUD *bool `yaml:"show_hud"`
	} `yaml:"debug"`
}

// Load reads and parses a tuning file
func Load(filename string) (*Tuning, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes a tuning document
func Parse(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	if v := t.Combo.WindowMs; v != nil && *v <= 0 {
		return fmt.Errorf("tuning: combo.window_ms must be positive, got %d", *v)
	}
	if v := t.Combo.SkillThreshold; v != nil && *v <= 0 {
		return fmt.Errorf("tuning: combo.skill_threshold must be positive, got %v", *v)
	}
	if v := t.Combo.MaxBonus; v != nil && *v < 0 {
		return fmt.Errorf("tuning: combo.max_bonus must not be negative, got %v", *v)
	}
	if v := t.Counter.WindowMs; v != nil && *v <= 0 {
		return fmt.Errorf("tuning: counter.window_ms must be positive, got %d", *v)
	}
	if v := t.Quality.AdjustEveryMs; v != nil && *v <= 0 {
		return fmt.Errorf("tuning: quality.adjust_every_ms must be positive, got %d", *v)
	}
	if v := t.Quality.LowEffectCap; v != nil && *v < 1 {
		return fmt.Errorf("tuning: quality.low_effect_cap must be at least 1, got %d", *v)
	}
	if v := t.Projectile.Speed; v != nil && *v <= 0 {
		return fmt.Errorf("tuning: projectile.speed must be positive, got %v", *v)
	}
	if v := t.Input.RepeatIntervalMs; v != nil && *v <= 0 {
		return fmt.Errorf("tuning: input.repeat_interval_ms must be positive, got %v", *v)
	}
	return nil
}

// Apply copies every set field into the global config. Call it from the tick thread only.
func (t *Tuning) Apply() {
	set(&config.Combo.WindowMs, t.Combo.WindowMs)
	set(&config.Combo.SkillThreshold, t.Combo.SkillThreshold)
	set(&config.Combo.GainPerHit, t.Combo.GainPerHit)
	set(&config.Combo.ComboBonus, t.Combo.ComboBonus)
	set(&config.Combo.MaxBonus, t.Combo.MaxBonus)
	set(&config.Counter.WindowMs, t.Counter.WindowMs)
	set(&config.Counter.PenaltySlowMs, t.Counter.PenaltySlowMs)
	set(&config.Counter.ResolveCharge, t.Counter.ResolveCharge)
	set(&config.BossSkill.MinGapMs, t.BossSkill.MinGapMs)
	set(&config.BossSkill.GapJitterMs, t.BossSkill.GapJitterMs)
	set(&config.Quality.AdjustEveryMs, t.Quality.AdjustEveryMs)
	set(&config.Quality.LowAboveMs, t.Quality.LowAboveMs)
	set(&config.Quality.MedAboveMs, t.Quality.MedAboveMs)
	set(&config.Quality.HighBelowMs, t.Quality.HighBelowMs)
	set(&config.Quality.LowEffectCap, t.Quality.LowEffectCap)
	set(&config.Projectile.Speed, t.Projectile.Speed)
	set(&config.Input.RepeatIntervalMs, t.Input.RepeatIntervalMs)
	set(&config.Debug.ShowHUD, t.Debug.ShowHUD)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
