package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/codesymphony/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VictoryScene is shown once the last boss falls, with the battle drawn behind it
type VictoryScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	battle       *BattleScene
	once         sync.Once
}

func NewVictoryScene(sc SceneChanger, svc *Services, battle *BattleScene) *VictoryScene {
	return &VictoryScene{sceneChanger: sc, services: svc, battle: battle}
}

func (vs *VictoryScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *VictoryScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	vs.battle.Draw(screen)
	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *VictoryScene) configure() {
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	vs.ecs.AddSystem(ui.UpdateInput)
	vs.ecs.AddSystem(ui.NewUpdateVictory(vs.restart, vs.title))
	vs.ecs.AddRenderer(ui.LayerOverlay, ui.DrawVictory)

	ui.GetOrCreateVictory(vs.ecs).TotalScore = vs.battle.sim.Progress().TotalScore
}

func (vs *VictoryScene) restart() {
	vs.battle.sim.Restart()
	vs.battle.resume()
	vs.sceneChanger.ChangeScene(vs.battle)
}

func (vs *VictoryScene) title() {
	vs.battle.repeater.Close()
	vs.sceneChanger.ChangeScene(NewTitleScene(vs.sceneChanger, vs.services))
}
