package spectator

import (
	"testing"

	"github.com/automoto/codesymphony/shared/netcomponents"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		view     View
		contains []string
		excludes []string
	}{
		{
			name:     "no state yet",
			view:     View{Notes: make([]netcomponents.NetNoteData, 2)},
			contains: []string{"waiting", "2 notes"},
		},
		{
			name: "calm battle",
			view: View{HasState: true, State: netcomponents.NetBattleStateData{
				State: "playing", BossName: "Code Golem", BossHealth: 900, BossMax: 1000,
				CounterState: "INACTIVE", Skill: "NONE", Combo: 3, Multiplier: 1.15,
				Quality: "HIGH", Bpm: 120,
			}},
			contains: []string{"[playing] Code Golem 900/1000", "combo 3 x1.15", "120 bpm"},
			excludes: []string{"counter", "READY", "NONE"},
		},
		{
			name: "busy battle",
			view: View{HasState: true, Notes: make([]netcomponents.NetNoteData, 4), State: netcomponents.NetBattleStateData{
				State: "playing", BossName: "Matrix Warden", CounterState: "ACTIVE",
				Skill: "REFLECT", SkillRemainMs: 1200, SkillReady: true, Ultimate: true,
			}},
			contains: []string{"READY", "ULTIMATE", "REFLECT 1200ms", "counter ACTIVE", "notes 4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summary(tt.view)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}
