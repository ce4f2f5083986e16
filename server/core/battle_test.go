package core

import (
	"testing"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newBattle(t *testing.T, d cfg.BotDifficulty) *Battle {
	t.Helper()
	b, err := NewBattle(Config{TickRate: 60, Seed: 7, Difficulty: d, Logger: quietLog}, donburi.NewWorld(), noSync)
	require.NoError(t, err)
	return b
}

func TestBattlePlaysItself(t *testing.T) {
	b := newBattle(t, cfg.BotDifficultyHard)
	b.Sim.Skill().NextTriggerMs = b.Sim.Now() + 1_000_000

	for i := 0; i < 600; i++ {
		st := b.Step(2)
		assert.Equal(t, b.Mirror().NoteCount(), b.Sim.ProjectileCount())
		assert.Equal(t, uint64(i+1), st.Tick)
	}

	st := b.Mirror().State()
	assert.Equal(t, b.Sim.SessionID(), st.SessionID)
	assert.Equal(t, "Code Golem", st.BossName)
	assert.Equal(t, 2, st.Spectators)
	assert.Equal(t, cfg.Audio.DefaultBPM, st.Bpm)
	assert.Greater(t, b.Bot.Triggers, 10)
	assert.Less(t, st.BossHealth, st.BossMax)
	assert.Positive(t, st.TotalScore)
	assert.Equal(t, "HIGH", st.Quality)
}

func TestBattleReplaysFromSeed(t *testing.T) {
	a := newBattle(t, cfg.BotDifficultyNormal)
	b := newBattle(t, cfg.BotDifficultyNormal)
	for i := 0; i < 900; i++ {
		a.Step(0)
		b.Step(0)
	}
	sa, sb := a.Mirror().State(), b.Mirror().State()
	assert.Equal(t, sa.BossHealth, sb.BossHealth)
	assert.Equal(t, sa.TotalScore, sb.TotalScore)
	assert.Equal(t, sa.SkillCharge, sb.SkillCharge)
	assert.Equal(t, a.Bot.Triggers, b.Bot.Triggers)
}

func TestBattleRestartsAfterVictory(t *testing.T) {
	b := newBattle(t, cfg.BotDifficultyNormal)
	b.Step(0)
	b.Sim.Progress().State = cfg.BattleVictory
	b.Sim.Progress().TotalScore = 12345

	st := b.Step(0)
	assert.Equal(t, "victory", st.State)

	holdTicks := VictoryHoldMs/b.tickMs + 1
	for i := int64(0); i < holdTicks; i++ {
		st = b.Step(0)
	}
	assert.Equal(t, "playing", st.State)
	assert.Equal(t, cfg.BattlePlaying, b.Sim.Progress().State)
	assert.Less(t, b.Sim.Progress().TotalScore, int64(12345))
	assert.Equal(t, 0, b.Sim.Progress().CurrentBoss)
}
