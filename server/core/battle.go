package core

import (
	"log/slog"
	"time"

	"github.com/automoto/codesymphony/clock"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/shared/netcomponents"
	"github.com/automoto/codesymphony/systems"
	"github.com/yohamta/donburi"
)

// VictoryHoldMs is how long a finished gauntlet stays on show before the
// server starts it over
const VictoryHoldMs = 5000

// Config selects how the server plays
type Config struct {
	Name       string
	Version    string
	TickRate   int
	Seed       uint64
	Difficulty cfg.BotDifficulty
	Logger     *slog.Logger
}

// Battle is one auto-played session. Time is the tick count times the tick
// length, so a seed replays the same battle at any wall-clock speed.
type Battle struct {
	Sim *systems.Context
	Bot *Bot

	clock  *clock.Mock
	beat   *Metronome
	mirror *Mirror
	log    *slog.Logger
	tickMs int64
	ticks  uint64

	boss      int
	victoryMs int64
}

func NewBattle(conf Config, net donburi.World, sync SyncFunc) (*Battle, error) {
	if conf.TickRate <= 0 {
		conf.TickRate = cfg.C.TPS
	}
	logger := conf.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mock := clock.NewMock(time.Now())
	beat := NewMetronome(mock)
	sim := systems.NewContext(
		systems.WithClock(mock),
		systems.WithSeed(conf.Seed),
		systems.WithAudio(beat),
	)
	logger = logger.With("session", sim.SessionID())

	mirror, err := NewMirror(net, sync, logger)
	if err != nil {
		return nil, err
	}

	tickMs := max(int64(1000/conf.TickRate), 1)
	b := &Battle{
		Sim:    sim,
		Bot:    NewBot(conf.Difficulty, tickMs, conf.Seed),
		clock:  mock,
		beat:   beat,
		mirror: mirror,
		log:    logger,
		tickMs: tickMs,
	}
	b.log.Info("battle started", "boss", sim.Boss().Name, "seed", conf.Seed, "tick_ms", b.tickMs)
	return b, nil
}

// Step runs one server tick: bot input, simulation, then the mirror
func (b *Battle) Step(spectators int) netcomponents.NetBattleStateData {
	b.clock.AdvanceMs(b.tickMs)
	b.ticks++

	b.Bot.Update(b.Sim, b.beat)
	b.Sim.Advance(float64(b.tickMs))
	b.observe()

	st := b.snapshot(spectators)
	b.mirror.Sync(b.Sim, st)
	return st
}

// observe logs gauntlet progress and starts a finished gauntlet over
func (b *Battle) observe() {
	pr := b.Sim.Progress()
	now := b.Sim.Now()

	if pr.CurrentBoss != b.boss {
		b.log.Info("boss defeated",
			"boss", cfg.Bosses[b.boss].Name,
			"next", b.Sim.Boss().Name,
			"total_score", pr.TotalScore)
		b.boss = pr.CurrentBoss
	}

	if pr.State != cfg.BattleVictory {
		b.victoryMs = 0
		return
	}
	if b.victoryMs == 0 {
		b.victoryMs = now
		b.log.Info("gauntlet cleared",
			"boss", b.Sim.Boss().Name,
			"total_score", pr.TotalScore,
			"triggers", b.Bot.Triggers,
			"counters", b.Bot.Counters,
			"ultimates", b.Bot.Ultimates)
		return
	}
	if now-b.victoryMs >= VictoryHoldMs {
		b.Sim.Restart()
		b.boss = b.Sim.Progress().CurrentBoss
		b.victoryMs = 0
		b.log.Info("battle restarted", "boss", b.Sim.Boss().Name)
	}
}

func (b *Battle) snapshot(spectators int) netcomponents.NetBattleStateData {
	sim := b.Sim
	hp := sim.BossHealth()
	phase := sim.Phase()
	skill := sim.Skill()
	combo := sim.Combo()
	pr := sim.Progress()

	st := netcomponents.NetBattleStateData{
		SessionID:    sim.SessionID(),
		Tick:         b.ticks,
		BossIndex:    pr.CurrentBoss,
		BossName:     sim.Boss().Name,
		BossHealth:   hp.Current,
		BossMax:      hp.Max,
		Phase:        phase.Phase,
		CounterState: phase.State().String(),
		Skill:        skill.Kind.String(),
		Combo:        combo.Count,
		Multiplier:   combo.Multiplier,
		SkillCharge:  combo.SkillCharge,
		SkillReady:   combo.SkillReady,
		Boosted:      combo.BoostActive,
		Ultimate:     sim.Ultimate().Active,
		Quality:      sim.Quality().Level.String(),
		Projectiles:  sim.ProjectileCount(),
		TotalScore:   pr.TotalScore,
		Defeated:     pr.Defeated,
		State:        pr.State.String(),
		Bpm:          b.beat.Bpm(),
		BeatProgress: b.beat.ProgressToNextBeat(),
		Spectators:   spectators,
	}
	if skill.Active() {
		st.SkillRemainMs = skill.EndMs - sim.Now()
	}
	return st
}

// Ticks is the number of steps run so far
func (b *Battle) Ticks() uint64 {
	return b.ticks
}

// Mirror is the replicated view of the battle
func (b *Battle) Mirror() *Mirror {
	return b.mirror
}
