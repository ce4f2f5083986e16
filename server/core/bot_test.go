package core

import (
	"testing"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotTriggersOncePerBeat(t *testing.T) {
	sim, _ := newSim(t)
	bot := NewBot(cfg.BotDifficultyNormal, 16, 1)
	beat := &fakeBeat{beat: 3, progress: 0.2, toNext: 400}

	bot.Update(sim, beat)
	assert.Equal(t, 0, bot.Triggers, "too early in the beat")

	beat.progress, beat.toNext = 0.95, 25
	bot.Update(sim, beat)
	bot.Update(sim, beat)
	assert.Equal(t, 1, bot.Triggers)
	assert.Equal(t, 0, sim.Combo().LastInstrument)

	beat.beat, beat.progress, beat.toNext = 4, 0.5, 12
	bot.Update(sim, beat)
	assert.Equal(t, 2, bot.Triggers, "a beat closer than one tick counts as on the beat")
	assert.Equal(t, 1, sim.Combo().LastInstrument)
	assert.Equal(t, 2, sim.Combo().Count)
}

func TestBotSkipsOffBeatsOnEasy(t *testing.T) {
	sim, _ := newSim(t)
	bot := NewBot(cfg.BotDifficultyEasy, 16, 1)

	bot.Update(sim, &fakeBeat{beat: 5, progress: 0.95})
	assert.Equal(t, 0, bot.Triggers)
	bot.Update(sim, &fakeBeat{beat: 6, progress: 0.95})
	assert.Equal(t, 1, bot.Triggers)
}

func TestBotResolvesCounterAfterReaction(t *testing.T) {
	sim, mock := newSim(t)
	bot := NewBot(cfg.BotDifficultyHard, 16, 1)
	idle := &fakeBeat{progress: 0, toNext: 500}

	p := sim.Phase()
	p.CounterActive = true
	p.CounterEndMs = sim.Now() + cfg.Counter.WindowMs

	bot.Update(sim, idle)
	assert.False(t, p.CounterResolved)

	mock.AdvanceMs(cfg.Bot.Difficulties[cfg.BotDifficultyHard].ReactionMs)
	bot.Update(sim, idle)
	assert.True(t, p.CounterResolved)
	assert.Equal(t, 1, bot.Counters)

	bot.Update(sim, idle)
	assert.Equal(t, 1, bot.Counters)
}

func TestBotUltimate(t *testing.T) {
	tests := []struct {
		name       string
		difficulty cfg.BotDifficulty
		fires      bool
	}{
		{"easy holds the charge", cfg.BotDifficultyEasy, false},
		{"normal spends it", cfg.BotDifficultyNormal, true},
		{"hard spends it", cfg.BotDifficultyHard, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, _ := newSim(t)
			combo := sim.Combo()
			combo.SkillCharge = cfg.Combo.SkillThreshold
			combo.SkillReady = true

			bot := NewBot(tt.difficulty, 16, 1)
			bot.Update(sim, &fakeBeat{toNext: 500})
			assert.Equal(t, tt.fires, sim.Ultimate().Active)
			assert.Equal(t, !tt.fires, combo.SkillReady)
		})
	}
}

func TestBotIdleWhenNotPlaying(t *testing.T) {
	sim, _ := newSim(t)
	sim.Progress().State = cfg.BattleSwitching
	bot := NewBot(cfg.BotDifficultyHard, 16, 1)

	bot.Update(sim, &fakeBeat{progress: 0.99})
	require.Equal(t, 0, bot.Triggers)
	assert.Equal(t, 0, sim.ProjectileCount())
}
