package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/codesymphony/clock"
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/automoto/codesymphony/persistence"
	"github.com/automoto/codesymphony/systems/factory"
	"github.com/automoto/codesymphony/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Audio is the sound collaborator. Every call must return without blocking.
type Audio interface {
	PlayHitNote(instrument int)
	PlayPattern(instrument int)
	PlayUltimateSequence()
	Bpm() int
	SetBpm(bpm int)
	ProgressToNextBeat() float64
	Volume() int
	SetVolume(percent int)
}

// Stinger is implemented by audio collaborators that have short cues for
// battle events besides notes
type Stinger interface {
	PlayStinger(id cfg.SoundID)
}

// SaveRequester accepts snapshots for background writing
type SaveRequester interface {
	Request(snap persistence.Snapshot)
}

// Context is one battle session. It owns the world and every collaborator
// the systems talk to. All methods must be called from the tick thread.
type Context struct {
	World donburi.World
	Clock clock.Provider
	Rand  *rand.Rand
	Audio Audio
	Saver SaveRequester
	Arena factory.Arena

	sessionID    string
	session      *donburi.Entry
	bosses       []donburi.Entity
	saveRequests int
}

type Option func(*Context)

func WithWorld(w donburi.World) Option {
	return func(c *Context) { c.World = w }
}

func WithClock(p clock.Provider) Option {
	return func(c *Context) { c.Clock = p }
}

// WithSeed makes every random choice of the session reproducible
func WithSeed(seed uint64) Option {
	return func(c *Context) { c.Rand = rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)) }
}

func WithAudio(a Audio) Option {
	return func(c *Context) { c.Audio = a }
}

func WithSaver(s SaveRequester) Option {
	return func(c *Context) { c.Saver = s }
}

func WithSessionID(id string) Option {
	return func(c *Context) { c.sessionID = id }
}

// NewContext creates the session singletons and the boss gauntlet
func NewContext(opts ...Option) *Context {
	c := &Context{
		Arena: factory.Arena{W: cfg.C.Width, H: cfg.C.Height},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.World == nil {
		c.World = donburi.NewWorld()
	}
	if c.Clock == nil {
		c.Clock = clock.NewReal()
	}
	if c.Rand == nil {
		WithSeed(uint64(time.Now().UnixNano()))(c)
	}
	if c.Audio == nil {
		c.Audio = NewSilentAudio()
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}

	now := c.Now()
	c.session = factory.CreateSession(c.World, c.sessionID, now, now+nextSkillGap(c.Rand))
	c.bosses = factory.CreateBosses(c.World)
	c.Audio.SetVolume(c.AudioSettings().Volume)

	components.ProjectileHit.Subscribe(c.World, c.onProjectileHit)
	components.BossDefeated.Subscribe(c.World, c.onBossDefeated)
	return c
}

// Now is the session clock in milliseconds
func (c *Context) Now() int64 {
	return clock.Millis(c.Clock)
}

func (c *Context) SessionID() string { return c.sessionID }

func (c *Context) Combo() *components.ComboData { return components.Combo.Get(c.session) }
func (c *Context) Phase() *components.BossPhaseData { return components.BossPhase.Get(c.session) }
func (c *Context) Skill() *components.BossSkillData { return components.BossSkill.Get(c.session) }
func (c *Context) Quality() *components.QualityData { return components.Quality.Get(c.session) }
func (c *Context) ScreenFX() *components.ScreenFXData { return components.ScreenFX.Get(c.session) }
func (c *Context) Ultimate() *components.UltimateData { return components.Ultimate.Get(c.session) }
func (c *Context) Progress() *components.ProgressData { return components.Progress.Get(c.session) }
func (c *Context) AudioSettings() *components.AudioData { return components.Audio.Get(c.session) }

// Effects is the effect registry
func (c *Context) Effects() *effects.Registry {
	return components.Effects.Get(c.session).Registry
}

// BossEntry returns the boss currently being fought
func (c *Context) BossEntry() *donburi.Entry {
	return c.World.Entry(c.bosses[c.Progress().CurrentBoss])
}

func (c *Context) Boss() *components.BossData { return components.Boss.Get(c.BossEntry()) }
func (c *Context) BossHealth() *components.HealthData { return components.Health.Get(c.BossEntry()) }

// BossCount is the length of the gauntlet
func (c *Context) BossCount() int {
	return len(c.bosses)
}

// BossHealthAt returns the health of the boss at gauntlet index i
func (c *Context) BossHealthAt(i int) *components.HealthData {
	return components.Health.Get(c.World.Entry(c.bosses[i]))
}

var projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile))

// ProjectileCount is the number of projectiles in flight
func (c *Context) ProjectileCount() int {
	return projectileQuery.Count(c.World)
}

// EachProjectile visits every projectile read-only
func (c *Context) EachProjectile(fn func(p *components.ProjectileData)) {
	projectileQuery.Each(c.World, func(e *donburi.Entry) {
		fn(components.Projectile.Get(e))
	})
}

// EachProjectileEntity visits every projectile with its entity id, which
// stays stable for the projectile's whole flight
func (c *Context) EachProjectileEntity(fn func(id donburi.Entity, p *components.ProjectileData)) {
	projectileQuery.Each(c.World, func(e *donburi.Entry) {
		fn(e.Entity(), components.Projectile.Get(e))
	})
}

// SaveRequests counts snapshots handed to the saver
func (c *Context) SaveRequests() int {
	return c.saveRequests
}
