package ui

import (
	"fmt"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/automoto/codesymphony/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug renders the F3 overlay: quality controller state, live
// counts and whatever extra lines the host supplies
func NewDrawDebug(sim *systems.Context, extra func() []string) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.ShowHUD {
			return
		}
		q := sim.Quality()
		p := sim.Phase()
		s := sim.Skill()
		lines := []string{
			fmt.Sprintf("session %s", sim.SessionID()),
			fmt.Sprintf("fps %.0f  tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			fmt.Sprintf("quality %s  avg %.1fms  forced %v  changes %d", q.Level, q.AvgFrameMs, q.Forced, q.Transitions),
			fmt.Sprintf("effects %d/%d  projectiles %d", sim.Effects().Len(), sim.Effects().Capacity(), sim.ProjectileCount()),
			fmt.Sprintf("counter %s  opened %d  resolved %d  failed %d", p.State(), p.Opened, p.Resolved, p.Failed),
			fmt.Sprintf("skill %s  next in %dms  absorbed %.0f  healed %d", s.Kind, max(0, s.NextTriggerMs-sim.Now()), s.TotalAbsorbed, s.TotalHealed),
			fmt.Sprintf("saves %d  ticks %d", sim.SaveRequests(), q.Ticks),
		}
		if extra != nil {
			lines = append(lines, extra()...)
		}

		face := fonts.Mono.Get()
		const lineH = 16.0
		top := 90.0
		vector.DrawFilledRect(screen, 8, float32(top-14), 430, float32(lineH*float64(len(lines))+8), cfg.HUD.DebugBackground, false)
		for i, l := range lines {
			drawText(screen, l, face, 14, top+lineH*float64(i), cfg.HUD.TextColor)
		}
	}
}
