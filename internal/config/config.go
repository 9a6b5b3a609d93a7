// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ItemTextureCount is the number of item categories, each with its own texture.
const ItemTextureCount = 4

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetsConfig   `yaml:"assets"`
	HUD      HUDConfig      `yaml:"hud"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Seed int64 `yaml:"seed"` // 0 picks a time-based seed
}

// AssetsConfig holds texture paths.
type AssetsConfig struct {
	Root       string   `yaml:"root"`       // searched before the working directory
	Player     string   `yaml:"player"`     // 4 rows x 3 columns sheet
	Background string   `yaml:"background"` // single frame
	Items      []string `yaml:"items"`      // common, common, special, shield
}

// HUDConfig holds terminal status bar settings.
type HUDConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DebugConfig holds developer aids. F3 toggles boxes, F12 takes a screenshot.
type DebugConfig struct {
	ShowBoxes     bool   `yaml:"show_boxes"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Assets: AssetsConfig{
			Player:     "assets/textures/characters/shogun.png",
			Background: "assets/textures/backgrounds/shogunhouse.png",
			Items: []string{
				"assets/textures/items/rice.png",
				"assets/textures/items/sake.png",
				"assets/textures/items/katana.png",
				"assets/textures/items/shield.png",
			},
		},
		HUD: HUDConfig{
			Enabled: true,
		},
		Debug: DebugConfig{
			ShowBoxes:     false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting the game cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive",
			c.Graphics.Width, c.Graphics.Height))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio: master_volume %v outside [0,1]", c.Audio.MasterVolume))
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("audio: sfx_volume %v outside [0,1]", c.Audio.SFXVolume))
	}
	if c.Assets.Player == "" {
		errs = append(errs, errors.New("assets: player texture path is empty"))
	}
	if c.Assets.Background == "" {
		errs = append(errs, errors.New("assets: background texture path is empty"))
	}
	if len(c.Assets.Items) != ItemTextureCount {
		errs = append(errs, fmt.Errorf("assets: need %d item textures, got %d",
			ItemTextureCount, len(c.Assets.Items)))
	}
	for i, p := range c.Assets.Items {
		if p == "" {
			errs = append(errs, fmt.Errorf("assets: item texture %d path is empty", i))
		}
	}

	return errors.Join(errs...)
}
