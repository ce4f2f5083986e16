package config

import "image/color"

// Config holds the logical arena size. Every simulation coordinate lives in this space.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// EffectType selects the visual an instrument spawns on trigger
type EffectType int

const (
	EffectRipple EffectType = iota
	EffectFirework
)

// InstrumentConfig describes one playable instrument
type InstrumentConfig struct {
	Name       string
	Key        string // label shown in the HUD
	Damage     int
	Effect     EffectType
	Channel    int // MIDI-style channel, 9 is percussion
	Program    int
	RootNote   int
	PatternLen int // beats the backing pattern lasts
}

// BossKind identifies a boss variant
type BossKind int

const (
	BossCode BossKind = iota
	BossMatrix
	BossCore
)

// SkillKind is the boss special skill a boss variant is allowed to use
type SkillKind int

const (
	SkillNone SkillKind = iota
	SkillAbsorb
	SkillReflect
	SkillCorePulse
)

func (k SkillKind) String() string {
	switch k {
	case SkillAbsorb:
		return "ABSORB"
	case SkillReflect:
		return "REFLECT"
	case SkillCorePulse:
		return "CORE_PULSE"
	default:
		return "NONE"
	}
}

// BossConfig is one row of the boss lookup table
type BossConfig struct {
	Kind            BossKind
	Name            string
	MaxHealth       int
	Skill           SkillKind
	SkillDurationMs int64
	TelegraphMs     int64
	TelegraphColor  color.RGBA
	BodyColor       color.RGBA
	GlowColor       color.RGBA
}

// ComboConfig contains combo and skill-charge tuning
type ComboConfig struct {
	WindowMs          int64
	StepPerHit        float64 // multiplier gain per combo step
	MaxBonus          float64 // cap on the combo part; 0.5 keeps the base multiplier within [1, 1.5]
	BoostFactor       float64 // multiplier scale while the ultimate boost is open
	SkillThreshold    float64
	GainPerHit        float64
	ComboBonus        float64
	PreAppliedShare   float64 // charge share granted when the trigger fires
	ProjectileShare   float64 // charge share granted when the projectile lands
	ReflectComboLoss  int
	LowSkipEvery      int // under LOW, every Nth trigger skips its projectile
	DefaultInstrument int // ultimate colour source before any instrument was used
}

// CounterConfig contains boss phase and counter window tuning
type CounterConfig struct {
	PhaseThresholds   []float64 // descending health ratios separating phases
	WindowMs          int64
	TelegraphRadius   float64
	TelegraphKey      string
	ResolveCharge     float64
	ResolveShake      float64
	PenaltyCharge     float64
	PenaltyShake      float64
	PenaltySlowFactor float64
	PenaltySlowMs     int64
	PenaltyDarkAlpha  float64
}

// HealingBurstConfig is one ring spawned when an absorb skill heals the boss
type HealingBurstConfig struct {
	Color  color.RGBA
	Speed  float64 // px per ms
	LifeMs float64
}

// BossSkillConfig contains the special-skill scheduler tuning
type BossSkillConfig struct {
	MinGapMs        int64
	GapJitterMs     int64
	HealCapRatio    float64 // heal never exceeds max health times this
	HealAccumRatio  float64
	ReflectDarkness float64
	TelegraphRadius float64
	CorePulseColor  color.RGBA
	HealingBursts   []HealingBurstConfig
}

// UltimateConfig contains the super skill tuning
type UltimateConfig struct {
	OverlayMs       int64
	BoostMs         int64
	BonusHealthRate float64
	BonusPerCombo   int
	Shake           float64
}

// QualityConfig contains the adaptive quality controller tuning
type QualityConfig struct {
	Smoothing        float64
	InitialFrameMs   float64
	AdjustEveryMs    int64
	LowAboveMs       float64
	MedAboveMs       float64
	HighBelowMs      float64
	LowEffectCap     int
	LowSkipModulo    int
	LowProjectileCap int
	TrailLengths     [3]int // indexed by quality level HIGH, MED, LOW
	EffectDensity    [3]float64
}

// ProjectileConfig contains projectile spawn tuning
type ProjectileConfig struct {
	Speed        float64 // px per second
	SideMargin   float64
	SpawnBelow   float64
	TargetSpread float64
	TargetLift   float64
}

// ScreenFXConfig contains per-tick decay of the shared screen effects
type ScreenFXConfig struct {
	ShakeDecay     float64
	ShakeFloor     float64
	ShakePixels    float64
	BassDecay      float64
	DarkDecay      float64
	ReflectFlashMs int64
}

// BossAnimConfig contains boss idle animation tuning
type BossAnimConfig struct {
	HitFlashMs float64
	BobPeriod  float64
	BobPixels  float64
}

// DebugConfig toggles developer views
type DebugConfig struct {
	ShowHUD       bool
	SkipTitle     bool
	RenderSkipLow bool
}

var C *Config
var Instruments []InstrumentConfig
var Bosses []BossConfig
var Combo ComboConfig
var Counter CounterConfig
var BossSkill BossSkillConfig
var Ultimate UltimateConfig
var Quality QualityConfig
var Projectile ProjectileConfig
var ScreenFX ScreenFXConfig
var BossAnim BossAnimConfig
var Debug DebugConfig

// Channel colours used by instruments and their projectiles
var (
	Red     = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	Blue    = color.RGBA{R: 80, G: 140, B: 255, A: 255}
	Green   = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	Yellow  = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	Magenta = color.RGBA{R: 230, G: 80, B: 230, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ChannelColor maps an instrument channel to its colour
func ChannelColor(channel int) color.RGBA {
	switch channel {
	case 0:
		return Red
	case 1:
		return Blue
	case 2:
		return Green
	case 3:
		return Yellow
	case 4:
		return Magenta
	default:
		return White
	}
}

// InstrumentColor returns the colour of the instrument at index id
func InstrumentColor(id int) color.RGBA {
	if id < 0 || id >= len(Instruments) {
		return White
	}
	return ChannelColor(Instruments[id].Channel)
}

func init() {
	C = &Config{
		Width:  900,
		Height: 700,
		TPS:    60,
	}

	Instruments = []InstrumentConfig{
		{Name: "Loop Drum", Key: "A", Damage: 10000, Effect: EffectRipple, Channel: 9, Program: 0, RootNote: 36, PatternLen: 2},
		{Name: "Function Piano", Key: "S", Damage: 16000, Effect: EffectFirework, Channel: 0, Program: 0, RootNote: 60, PatternLen: 2},
		{Name: "Variable Violin", Key: "D", Damage: 20000, Effect: EffectRipple, Channel: 1, Program: 40, RootNote: 67, PatternLen: 2},
		{Name: "Recursive Sax", Key: "F", Damage: 24000, Effect: EffectFirework, Channel: 2, Program: 65, RootNote: 62, PatternLen: 2},
		{Name: "Concurrent Bass", Key: "G", Damage: 30000, Effect: EffectRipple, Channel: 3, Program: 33, RootNote: 40, PatternLen: 2},
	}

	Bosses = []BossConfig{
		{
			Kind:            BossCode,
			Name:            "Code Golem",
			MaxHealth:       12_000_000,
			Skill:           SkillAbsorb,
			SkillDurationMs: 3000,
			TelegraphMs:     1500,
			TelegraphColor:  color.RGBA{R: 255, G: 140, B: 80, A: 255},
			BodyColor:       color.RGBA{R: 50, G: 20, B: 90, A: 200},
			GlowColor:       color.RGBA{R: 180, G: 120, B: 255, A: 200},
		},
		{
			Kind:            BossMatrix,
			Name:            "Matrix Warden",
			MaxHealth:       18_000_000,
			Skill:           SkillReflect,
			SkillDurationMs: 2500,
			TelegraphMs:     1600,
			TelegraphColor:  color.RGBA{R: 255, G: 230, B: 90, A: 255},
			BodyColor:       color.RGBA{R: 0, G: 40, B: 10, A: 200},
			GlowColor:       color.RGBA{R: 60, G: 255, B: 120, A: 200},
		},
		{
			Kind:            BossCore,
			Name:            "Neural Core",
			MaxHealth:       25_000_000,
			Skill:           SkillCorePulse,
			SkillDurationMs: 3200,
			TelegraphMs:     2000,
			TelegraphColor:  color.RGBA{R: 140, G: 210, B: 255, A: 255},
			BodyColor:       color.RGBA{R: 10, G: 30, B: 60, A: 200},
			GlowColor:       color.RGBA{R: 120, G: 200, B: 255, A: 200},
		},
	}

	Combo = ComboConfig{
		WindowMs:          800,
		StepPerHit:        0.05,
		MaxBonus:          0.5, // 1.5 lets the base multiplier reach 2.5, see combo.max_bonus in the tuning file
		BoostFactor:       2,
		SkillThreshold:    300,
		GainPerHit:        6.5,
		ComboBonus:        0.25,
		PreAppliedShare:   0.4,
		ProjectileShare:   0.6,
		ReflectComboLoss:  5,
		LowSkipEvery:      2,
		DefaultInstrument: 1,
	}

	Counter = CounterConfig{
		PhaseThresholds:   []float64{0.7, 0.4, 0.15},
		WindowMs:          1500,
		TelegraphRadius:   300,
		TelegraphKey:      "SPACE",
		ResolveCharge:     25,
		ResolveShake:      0.3,
		PenaltyCharge:     30,
		PenaltyShake:      0.2,
		PenaltySlowFactor: 0.5,
		PenaltySlowMs:     4000,
		PenaltyDarkAlpha:  0.65,
	}

	BossSkill = BossSkillConfig{
		MinGapMs:        8000,
		GapJitterMs:     6000,
		HealCapRatio:    0.01,
		HealAccumRatio:  0.5,
		ReflectDarkness: 0.4,
		TelegraphRadius: 260,
		CorePulseColor:  color.RGBA{R: 120, G: 200, B: 255, A: 255},
		HealingBursts: []HealingBurstConfig{
			{Color: color.RGBA{R: 255, G: 140, B: 90, A: 255}, Speed: 0.35, LifeMs: 1200},
			{Color: color.RGBA{R: 255, G: 200, B: 140, A: 255}, Speed: 0.5, LifeMs: 900},
			{Color: color.RGBA{R: 255, G: 255, B: 200, A: 255}, Speed: 0.7, LifeMs: 700},
		},
	}

	Ultimate = UltimateConfig{
		OverlayMs:       5000,
		BoostMs:         10000,
		BonusHealthRate: 0.03,
		BonusPerCombo:   800,
		Shake:           0.7,
	}

	Quality = QualityConfig{
		Smoothing:        0.08,
		InitialFrameMs:   16,
		AdjustEveryMs:    1500,
		LowAboveMs:       28,
		MedAboveMs:       20,
		HighBelowMs:      14,
		LowEffectCap:     12,
		LowSkipModulo:    2,
		LowProjectileCap: 14,
		TrailLengths:     [3]int{12, 9, 5},
		EffectDensity:    [3]float64{1.0, 0.75, 0.45},
	}

	Projectile = ProjectileConfig{
		Speed:        600,
		SideMargin:   50,
		SpawnBelow:   20,
		TargetSpread: 120,
		TargetLift:   40,
	}

	ScreenFX = ScreenFXConfig{
		ShakeDecay:     0.90,
		ShakeFloor:     0.001,
		ShakePixels:    18,
		BassDecay:      0.92,
		DarkDecay:      0.92,
		ReflectFlashMs: 400,
	}

	BossAnim = BossAnimConfig{
		HitFlashMs: 120,
		BobPeriod:  2400,
		BobPixels:  6,
	}

	Debug = DebugConfig{
		ShowHUD:       false,
		SkipTitle:     false,
		RenderSkipLow: true,
	}
}
