package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GlitchShader splits the colour channels of the battle canvas while the
	// ultimate is running
	GlitchShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/glitch.kage")
	if err != nil {
		return fmt.Errorf("read glitch shader: %w", err)
	}
	GlitchShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile glitch shader: %w", err)
	}
	return nil
}
