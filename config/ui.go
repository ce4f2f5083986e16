package config

import "image/color"

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	Subtitle          string
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains battle HUD layout and colours
type HUDConfig struct {
	Margin          float64
	BarHeight       float64
	BossBarWidth    float64
	ChargeBarWidth  float64
	BeatBarWidth    float64
	BarBackground   color.RGBA
	HealthColor     color.RGBA
	ChargeColor     color.RGBA
	ChargeReady     color.RGBA
	BeatColor       color.RGBA
	TextColor       color.RGBA
	WarningColor    color.RGBA
	CounterColor    color.RGBA
	DebugBackground color.RGBA
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	GridSpacing     float64
	ProjectileSize  float64
}

// VictoryConfig contains victory screen configuration values
type VictoryConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	MenuOptions  []string
}

var Pause PauseConfig
var Menu MenuConfig
var HUD HUDConfig
var Victory VictoryConfig

var (
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	BrightOrange = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	Gray         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

func init() {
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Restart", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 8, G: 6, B: 20, A: 255},
		TitleColor:        color.RGBA{R: 140, G: 220, B: 255, A: 255},
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "CODE SYMPHONY",
		Subtitle:          "play the boss down, one note at a time",
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	HUD = HUDConfig{
		Margin:          16,
		BarHeight:       14,
		BossBarWidth:    520,
		ChargeBarWidth:  220,
		BeatBarWidth:    160,
		BarBackground:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthColor:     color.RGBA{R: 220, G: 50, B: 80, A: 255},
		ChargeColor:     color.RGBA{R: 80, G: 170, B: 255, A: 255},
		ChargeReady:     color.RGBA{R: 255, G: 220, B: 60, A: 255},
		BeatColor:       color.RGBA{R: 120, G: 255, B: 160, A: 255},
		TextColor:       White,
		WarningColor:    color.RGBA{R: 255, G: 90, B: 90, A: 255},
		CounterColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		DebugBackground: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		BackgroundColor: color.RGBA{R: 6, G: 8, B: 18, A: 255},
		GridColor:       color.RGBA{R: 30, G: 40, B: 70, A: 255},
		GridSpacing:     45,
		ProjectileSize:  6,
	}

	Victory = VictoryConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TitleColor:   color.RGBA{R: 255, G: 220, B: 60, A: 255},
		MenuOptions:  []string{"Play Again", "Title"},
	}
}
