package config

// BossAnimationDef describes how a boss body is animated by the renderer
type BossAnimationDef struct {
	Lines      []string // glyph rows scrolled through the body
	ScrollMs   float64  // ms per scrolled row
	PulseMs    float64  // glow pulse period
	BodyWidth  int
	BodyHeight int
}

// BossAnimations maps a boss kind to its animation
var BossAnimations = map[BossKind]BossAnimationDef{
	BossCode: {
		Lines: []string{
			"func fight() {",
			"  debug()",
			"  optimize()",
			"}",
			"for { refactor() }",
			"if bug { fix() }",
			"go innovate()",
			"defer ship()",
		},
		ScrollMs: 0, PulseMs: 1800, BodyWidth: 260, BodyHeight: 320,
	},
	BossMatrix: {
		Lines:    []string{"01101001", "10010110", "00111100", "11000011", "01011010"},
		ScrollMs: 80, PulseMs: 1400, BodyWidth: 280, BodyHeight: 300,
	},
	BossCore: {
		Lines:    []string{"<>", "[]", "{}", "()"},
		ScrollMs: 120, PulseMs: 900, BodyWidth: 240, BodyHeight: 240,
	},
}
