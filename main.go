package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/codesymphony/assets"
	"github.com/automoto/codesymphony/audio"
	"github.com/automoto/codesymphony/audio/device"
	"github.com/automoto/codesymphony/clock"
	"github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/config/tuning"
	"github.com/automoto/codesymphony/fonts"
	"github.com/automoto/codesymphony/persistence"
	"github.com/automoto/codesymphony/scenes"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(svc *scenes.Services, skipTitle bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipTitle {
		g.scene = scenes.NewBattleScene(g, svc, nil)
	} else {
		g.scene = scenes.NewTitleScene(g, svc)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipTitle := flag.Bool("skip-title", config.Debug.SkipTitle, "start a fresh battle straight away")
	debugHUD := flag.Bool("debug", config.Debug.ShowHUD, "show the debug HUD")
	tuningFile := flag.String("tuning", tuning.DefaultFile, "optional tuning overlay file")
	flag.Parse()
	config.Debug.ShowHUD = *debugHUD

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: %v, ultimate glitch disabled", err)
	}

	svc := &scenes.Services{}
	loadTuning(svc, *tuningFile)
	defer func() {
		if svc.Tuning != nil {
			_ = svc.Tuning.Close()
		}
	}()

	// Persistence falls back to memory so the game still runs without app data access
	store, err := persistence.OpenGData(config.Persistence.AppName, config.Persistence.ProgressKey)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		svc.Store = persistence.NewMemoryStore()
	} else {
		svc.Store = store
	}
	svc.Saver = persistence.NewSaver(svc.Store)
	defer svc.Saver.Close()

	var out audio.Output = audio.Discard
	rate := beep.SampleRate(config.Audio.SampleRate)
	spk, err := device.OpenSpeaker(rate, time.Duration(config.Audio.BufferMs)*time.Millisecond)
	if err != nil {
		log.Printf("Warning: Could not initialize audio: %v", err)
	} else {
		out = spk
		defer spk.Close()
	}
	svc.Audio = audio.NewEngine(out, clock.NewReal(), uint64(time.Now().UnixNano()))
	defer svc.Audio.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Code Symphony")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(svc, *skipTitle)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Game stopped: %v", err)
	}
}

// loadTuning applies the overlay file if present and starts watching it
func loadTuning(svc *scenes.Services, path string) {
	if t, err := tuning.Load(path); err == nil {
		t.Apply()
		log.Printf("[tuning] loaded %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: Could not load tuning: %v", err)
	}

	w, err := tuning.NewWatcher(path)
	if err != nil {
		log.Printf("Warning: Could not watch tuning file: %v", err)
		return
	}
	svc.Tuning = w
}
