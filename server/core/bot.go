package core

import (
	"math/rand/v2"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems"
)

// Beat is the part of the beat grid the bot times its triggers against
type Beat interface {
	Beat() int64
	ProgressToNextBeat() float64
	MsToNextBeat() int64
}

// Bot plays a battle from the server tick. It cycles through the
// instruments on the beat, answers counter windows after its reaction time
// and spends a full skill charge on the ultimate.
type Bot struct {
	conf   cfg.BotDifficultyConfig
	onBeat float64
	tickMs int64
	rng    *rand.Rand

	next      int
	firedBeat int64

	// counter window being handled, keyed by its deadline
	window      int64
	seenMs      int64
	willResolve bool

	Triggers  int
	Counters  int
	Ultimates int
}

// NewBot creates a bot for the given difficulty. Unknown difficulties play
// at normal. tickMs is the server tick length, used to catch a beat that
// would otherwise fall between two ticks.
func NewBot(d cfg.BotDifficulty, tickMs int64, seed uint64) *Bot {
	conf, ok := cfg.Bot.Difficulties[d]
	if !ok {
		conf = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	if conf.BeatsPerTrigger < 1 {
		conf.BeatsPerTrigger = 1
	}
	return &Bot{
		conf:      conf,
		onBeat:    cfg.Bot.OnBeatProgress,
		tickMs:    tickMs,
		rng:       rand.New(rand.NewPCG(seed, seed^0xda942042e4dd58b5)),
		firedBeat: -1,
	}
}

// Update runs the bot for one tick, before the simulation advances
func (b *Bot) Update(sim *systems.Context, beat Beat) {
	if sim.Progress().State != cfg.BattlePlaying {
		return
	}
	b.updateCounter(sim, sim.Now())

	if b.conf.UseUltimate && sim.Combo().SkillReady && sim.TriggerSuperSkill() {
		b.Ultimates++
	}

	b.updateBeat(sim, beat)
}

func (b *Bot) updateCounter(sim *systems.Context, now int64) {
	p := sim.Phase()
	if p.State() != components.CounterActive {
		return
	}
	if p.CounterEndMs != b.window {
		b.window = p.CounterEndMs
		b.seenMs = now
		b.willResolve = b.rng.Float64() < b.conf.CounterChance
	}
	if !b.willResolve || now-b.seenMs < b.conf.ReactionMs {
		return
	}
	b.willResolve = false
	if sim.AttemptCounterResolve() {
		b.Counters++
	}
}

func (b *Bot) updateBeat(sim *systems.Context, beat Beat) {
	idx := beat.Beat()
	if idx == b.firedBeat || idx%int64(b.conf.BeatsPerTrigger) != 0 {
		return
	}
	if beat.ProgressToNextBeat() < b.onBeat && beat.MsToNextBeat() > b.tickMs {
		return
	}
	b.firedBeat = idx
	if sim.TriggerInstrument(b.next) {
		b.Triggers++
	}
	b.next = (b.next + 1) % len(cfg.Instruments)
}
