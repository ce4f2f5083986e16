package scenes

import (
	"log"
	"sync"

	"github.com/automoto/codesymphony/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene displays the title menu
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, svc *Services) *TitleScene {
	return &TitleScene{sceneChanger: sc, services: svc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(ui.UpdateInput)
	ts.ecs.AddSystem(ui.NewUpdateMenu(ts.start, ts.sceneChanger.Quit))
	ts.ecs.AddRenderer(ui.LayerWorld, ui.DrawMenu)

	ui.SetHasSave(ts.ecs, ts.services.loadSave() != nil)
}

// start opens the battle, either fresh or from the saved progress
func (ts *TitleScene) start(fresh bool) {
	if fresh {
		if err := ts.services.Store.Clear(); err != nil {
			log.Printf("Warning: Could not clear saved progress: %v", err)
		}
		ts.sceneChanger.ChangeScene(NewBattleScene(ts.sceneChanger, ts.services, nil))
		return
	}
	ts.sceneChanger.ChangeScene(NewBattleScene(ts.sceneChanger, ts.services, ts.services.loadSave()))
}
