package scenes

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/codesymphony/clock"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/input"
	"github.com/automoto/codesymphony/persistence"
	"github.com/automoto/codesymphony/systems"
	"github.com/automoto/codesymphony/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// maxFrameMs bounds one tick so a stalled window does not skip whole windows
const maxFrameMs = 250

// BattleScene runs the boss gauntlet
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	save         *persistence.Snapshot
	sim          *systems.Context
	clock        *clock.Pausable
	repeater     *input.Repeater
	frames       *clock.FrameMeter
	lastFrame    time.Time
	once         sync.Once
}

// NewBattleScene creates a battle, restored from save when it is not nil
func NewBattleScene(sc SceneChanger, svc *Services, save *persistence.Snapshot) *BattleScene {
	return &BattleScene{sceneChanger: sc, services: svc, save: save}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if bs.sim.Progress().State == cfg.BattleVictory {
		ui.ReleaseAll(bs.repeater)
		bs.sceneChanger.ChangeScene(NewVictoryScene(bs.sceneChanger, bs.services, bs))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.frames.Mark()
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.clock = clock.NewPausable(clock.NewReal())
	bs.sim = systems.NewContext(
		systems.WithClock(bs.clock),
		systems.WithSeed(uint64(time.Now().UnixNano())),
		systems.WithAudio(bs.services.Audio),
		systems.WithSaver(bs.services.Saver),
	)
	bs.sim.ApplySnapshot(bs.save)
	bs.repeater = input.NewRepeater(cfg.Input.RepeatIntervalMs, cfg.Input.InitialDelayFactor, cfg.Input.QueueSize)
	bs.frames = clock.NewFrameMeter(clock.NewReal(), maxFrameMs)
	bs.lastFrame = bs.clock.Now()

	// The scene shares the battle's world so UI singletons sit next to the session
	bs.ecs = ecs.NewECS(bs.sim.World)

	// Systems that always run
	bs.ecs.AddSystem(ui.UpdateInput)
	bs.ecs.AddSystem(ui.NewUpdatePause(bs.sim, bs.repeater, bs.leave))
	bs.ecs.AddSystem(ui.NewUpdateSettingsMenu(bs.sim))
	bs.ecs.AddSystem(bs.updateClock)

	// Battle systems wrapped with the pause check
	bs.ecs.AddSystem(ui.WithPauseCheck(ui.NewUpdateBattleInput(bs.sim, bs.repeater)))
	bs.ecs.AddSystem(ui.WithPauseCheck(bs.tick))

	bs.ecs.AddRenderer(ui.LayerWorld, ui.NewDrawBattle(bs.sim))
	bs.ecs.AddRenderer(ui.LayerHUD, ui.NewDrawHUD(bs.sim))
	bs.ecs.AddRenderer(ui.LayerHUD, ui.NewDrawDebug(bs.sim, bs.debugLines))
	bs.ecs.AddRenderer(ui.LayerOverlay, ui.DrawPause)
	bs.ecs.AddRenderer(ui.LayerOverlay, ui.NewDrawSettingsMenu(bs.sim))
}

// updateClock freezes battle time behind the pause menu
func (bs *BattleScene) updateClock(e *ecs.ECS) {
	if ui.IsPaused(e) {
		bs.clock.Pause()
		return
	}
	bs.clock.Resume()
}

// tick advances battle time by the clock delta. Quality is fed the drawn
// frame interval instead: ebiten runs several Updates back to back after a
// slow frame, so the deltas here read 50, 0, 0 while each frame took 50ms.
func (bs *BattleScene) tick(e *ecs.ECS) {
	bs.services.drainTuning()

	now := bs.clock.Now()
	dt := float64(now.Sub(bs.lastFrame).Microseconds()) / 1000
	if dt <= 0 {
		return
	}
	bs.lastFrame = now
	bs.sim.AdvanceFrame(min(dt, maxFrameMs), bs.frames.CostMs())
}

func (bs *BattleScene) debugLines() []string {
	return []string{
		fmt.Sprintf("repeat %.2fx  dropped %d", bs.repeater.SlowFactor(), bs.repeater.Dropped()),
		fmt.Sprintf("audio cues dropped %d", bs.services.Audio.Dropped()),
	}
}

// resume picks the battle up again after the victory screen restarted it
func (bs *BattleScene) resume() {
	bs.lastFrame = bs.clock.Now()
	bs.frames.Reset()
}

// leave stops input handling and returns to the title
func (bs *BattleScene) leave() {
	bs.repeater.Close()
	bs.sceneChanger.ChangeScene(NewTitleScene(bs.sceneChanger, bs.services))
}
