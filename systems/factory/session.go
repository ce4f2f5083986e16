package factory

import (
	"github.com/automoto/codesymphony/archetypes"
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the entity carrying every battle-wide singleton.
// nextSkillMs is when the first boss skill may fire.
func CreateSession(w donburi.World, sessionID string, nowMs, nextSkillMs int64) *donburi.Entry {
	e := archetypes.Session.Spawn(w)

	components.Combo.SetValue(e, components.ComboData{
		Multiplier:     1,
		LastInstrument: -1,
	})
	components.BossPhase.SetValue(e, components.BossPhaseData{})
	components.BossSkill.SetValue(e, components.BossSkillData{
		Kind:          cfg.SkillNone,
		NextTriggerMs: nextSkillMs,
	})
	components.Quality.SetValue(e, components.QualityData{
		Level:        cfg.QualityHigh,
		AvgFrameMs:   cfg.Quality.InitialFrameMs,
		LastAdjustMs: nowMs,
		PriorLevel:   cfg.QualityHigh,
	})
	components.ScreenFX.SetValue(e, components.ScreenFXData{SlowFactor: 1})
	components.Effects.SetValue(e, components.EffectsData{Registry: effects.NewRegistry()})
	components.Ultimate.SetValue(e, components.UltimateData{})
	components.Progress.SetValue(e, components.ProgressData{
		SessionID: sessionID,
		State:     cfg.BattlePlaying,
	})
	components.Audio.SetValue(e, components.AudioData{
		Volume: cfg.Audio.DefaultVolume,
		BPMMax: cfg.Audio.DefaultBPMMax,
	})

	return e
}
