package spectator

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/codesymphony/config"
)

// Summary renders a view as one status line
func Summary(v View) string {
	if !v.HasState {
		return fmt.Sprintf("waiting for battle state (%d notes)", len(v.Notes))
	}
	st := v.State
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %d/%d phase %d", st.State, st.BossName, st.BossHealth, st.BossMax, st.Phase)
	fmt.Fprintf(&b, " | combo %d x%.2f charge %.0f/%.0f", st.Combo, st.Multiplier, st.SkillCharge, cfg.Combo.SkillThreshold)
	if st.SkillReady {
		b.WriteString(" READY")
	}
	if st.Ultimate {
		b.WriteString(" ULTIMATE")
	}
	if st.Skill != cfg.SkillNone.String() {
		fmt.Fprintf(&b, " | %s %dms", st.Skill, st.SkillRemainMs)
	}
	if st.CounterState != "INACTIVE" {
		fmt.Fprintf(&b, " | counter %s", st.CounterState)
	}
	fmt.Fprintf(&b, " | notes %d | %s | score %d | %d bpm", len(v.Notes), st.Quality, st.TotalScore, st.Bpm)
	return b.String()
}
