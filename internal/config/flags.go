package config

import (
	"flag"
	"os"
)

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config      string
	WriteConfig string
	Debug       bool
	Seed        int64
	Mute        bool
	NoHUD       bool
	Boxes       bool
	Fullscreen  bool
	Windowed    bool
	Width       int
	Height      int
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write the effective config to this path and exit")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.Int64Var(&f.Seed, "seed", 0, "Random seed for item spawning (0 keeps the configured seed)")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound")
	fs.BoolVar(&f.NoHUD, "no-hud", false, "Disable the terminal status bar")
	fs.BoolVar(&f.Boxes, "boxes", false, "Outline collision boxes")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
}

// ParseFlags parses the process arguments. Call this early in main().
func ParseFlags() *Flags {
	f := &Flags{}
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	f.Register(fs)
	_ = fs.Parse(os.Args[1:])
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Seed != 0 {
		cfg.Game.Seed = f.Seed
	}
	if f.Mute {
		cfg.Audio.Muted = true
	}
	if f.NoHUD {
		cfg.HUD.Enabled = false
	}
	if f.Boxes {
		cfg.Debug.ShowBoxes = true
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
}
