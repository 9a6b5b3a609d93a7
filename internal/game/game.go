// Package game wires the window, renderer, input, audio and HUD around the world
// and runs the main loop.
package game

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shogunato/internal/assets"
	"github.com/Faultbox/shogunato/internal/config"
	"github.com/Faultbox/shogunato/internal/engine/audio"
	"github.com/Faultbox/shogunato/internal/engine/debug"
	"github.com/Faultbox/shogunato/internal/engine/input"
	"github.com/Faultbox/shogunato/internal/engine/renderer"
	"github.com/Faultbox/shogunato/internal/engine/texture"
	"github.com/Faultbox/shogunato/internal/engine/window"
	"github.com/Faultbox/shogunato/internal/game/entity"
	"github.com/Faultbox/shogunato/internal/game/ui"
	"github.com/Faultbox/shogunato/internal/game/world"
	"github.com/Faultbox/shogunato/internal/logger"
)

// Title is the window title.
const Title = "SHOGUNATO"

// Game is the main game instance.
type Game struct {
	config *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	hud      *ui.StatusBar // nil when disabled

	assets   *assets.Manager
	textures []uint32
	world    *world.World

	showBoxes bool
	shots     *debug.Screenshots
}

// New opens the window, loads assets and builds the world.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{
		config:    cfg,
		showBoxes: cfg.Debug.ShowBoxes,
		shots:     debug.NewScreenshots(cfg.Debug.ScreenshotDir, "shogunato"),
	}

	// Window also creates the OpenGL context.
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fbWidth, fbHeight := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: fbWidth, Height: fbHeight})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.audio = newAudio(cfg.Audio)
	if cfg.HUD.Enabled {
		g.hud = ui.NewStatusBar(os.Stdout)
	}

	g.assets = assets.NewManager(assetRoots(cfg.Assets.Root)...)
	sheets := g.loadAssets(cfg.Assets)
	g.world = world.New(g.renderer, sheets, rand.New(rand.NewSource(seed(cfg.Game.Seed))))

	logger.Info("game initialized successfully")
	return g, nil
}

// newAudio opens the audio device. Failure only costs the sound cues.
func newAudio(cfg config.AudioConfig) *audio.Manager {
	m := audio.New()
	m.SetMasterVolume(cfg.MasterVolume)
	m.SetSFXVolume(cfg.SFXVolume)
	m.SetMuted(cfg.Muted)
	if cfg.Muted {
		return m
	}
	if err := m.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	return m
}

// seed returns configured, or a time-based seed when configured is 0.
func seed(configured int64) int64 {
	s := configured
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Info("item spawner seeded", zap.Int64("seed", s))
	return s
}

// assetRoots lists where asset paths are looked up, lowest priority first:
// next to the executable, the working directory, then the configured root.
func assetRoots(configured string) []string {
	var roots []string
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(exe))
	}
	roots = append(roots, ".", configured)
	return roots
}

// loadAssets uploads every sprite sheet. A sheet that fails to load is
// replaced by an empty texture and the game carries on.
func (g *Game) loadAssets(cfg config.AssetsConfig) world.Assets {
	var sheets world.Assets
	sheets.Player = g.loadSheet("player", cfg.Player)
	sheets.Background = g.loadSheet("background", cfg.Background)
	for i := range sheets.Items {
		sheets.Items[i] = g.loadSheet(world.Category(i).String(), cfg.Items[i])
	}
	return sheets
}

func (g *Game) loadSheet(name, path string) world.Sheet {
	tex, err := g.loadTexture(path)
	g.textures = append(g.textures, tex.ID)
	if err != nil {
		logger.Warn("failed to load texture",
			zap.String("sheet", name),
			zap.String("path", path),
			zap.Error(err),
		)
	} else {
		logger.Debug("texture loaded",
			zap.String("sheet", name),
			zap.Int("width", tex.Width),
			zap.Int("height", tex.Height),
		)
	}
	return world.Sheet{Texture: tex.ID, Width: tex.Width, Height: tex.Height}
}

func (g *Game) loadTexture(path string) (texture.Texture, error) {
	data, err := g.assets.Load(path)
	if err != nil {
		return texture.Empty(), err
	}
	return texture.Load(data)
}

// Run drives the main loop until the window closes or the game is over.
func (g *Game) Run() error {
	start := time.Now()
	frames := 0
	fpsTimer := start

	logger.Info("starting game loop")
	g.refreshHUD()

	for {
		// 1. Poll input; Escape or closing the window quits.
		if g.input.Update() {
			logger.Info("quit requested", zap.Int("score", g.world.Session.Score))
			return nil
		}

		// 2-7. Step the world, drawing as it goes.
		g.renderer.Begin()
		events := g.world.Frame(time.Since(start), entity.Controls(g.input.Snapshot()), g.renderer)
		g.handleEvents(events)
		g.debugKeys()

		// 8. Present and report.
		g.window.SwapBuffers()
		g.refreshHUD()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frames))
			frames = 0
			fpsTimer = time.Now()
		}

		if g.world.Session.GameOver {
			g.announceGameOver()
			return nil
		}
	}
}

// debugKeys draws the collision overlay and serves the debug hotkeys.
func (g *Game) debugKeys() {
	if g.input.JustPressed(input.KeyToggleBoxes) {
		g.showBoxes = !g.showBoxes
		logger.Info("collision boxes", zap.Bool("visible", g.showBoxes))
	}
	if g.showBoxes {
		g.renderer.DrawLineLoop(debug.OutlineVertices(g.world.Player.Min, g.world.Player.Max), debug.PlayerBoxColor)
		for _, it := range g.world.Items {
			g.renderer.DrawLineLoop(debug.OutlineVertices(it.Min, it.Max), debug.ItemBoxColor)
		}
	}
	if g.input.JustPressed(input.KeyScreenshot) {
		pixels, w, h := g.renderer.ReadPixels()
		path, err := g.shots.Save(pixels, w, h)
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}
}

func (g *Game) handleEvents(events []world.Event) {
	for _, ev := range events {
		logEvent(ev, g.world.Session)

		if cue, ok := cueFor(ev); ok && g.audio.IsInitialized() {
			if err := g.audio.Play(cue); err != nil {
				logger.Warn("failed to play cue", zap.Stringer("cue", cue), zap.Error(err))
			}
		}

		if ev.Kind == world.EventCollected {
			g.refreshHUD()
		}
	}
}

// cueFor maps a world event to its sound cue.
func cueFor(ev world.Event) (audio.Cue, bool) {
	switch ev.Kind {
	case world.EventCollected:
		switch ev.Category {
		case world.CategorySpecial:
			return audio.CueSpecial, true
		case world.CategoryShield:
			return audio.CueShield, true
		default:
			return audio.CueCollect, true
		}
	case world.EventDamage:
		return audio.CueDamage, true
	case world.EventGameOver:
		return audio.CueGameOver, true
	default:
		return 0, false
	}
}

func logEvent(ev world.Event, s *world.Session) {
	switch ev.Kind {
	case world.EventCollected:
		logger.Debug("item collected",
			zap.Stringer("category", ev.Category),
			zap.Int("points", ev.Points),
			zap.Int("score", s.Score),
			zap.Float32("item_speed", s.ItemSpeed),
		)
	case world.EventDamage:
		logger.Debug("item hit the ground",
			zap.Float32("damage", ev.Damage),
			zap.Float32("absorbed", ev.Absorbed),
			zap.Float32("taken", ev.Taken),
			zap.Float32("hp", s.HP),
			zap.Float32("shield", s.Shield),
		)
	case world.EventGameOver:
		logger.Info("game over",
			zap.Int("score", s.Score),
			zap.Int("collections", s.Collections),
		)
	}
}

func (g *Game) refreshHUD() {
	s := g.world.Session
	if g.hud == nil {
		logger.Debug("status",
			zap.Int("score", s.Score),
			zap.Float32("hp", s.ClampedHP()),
			zap.Float32("shield", s.ClampedShield()),
		)
		return
	}
	if err := g.hud.Render(s.Score, s.HP, s.Shield); err != nil {
		logger.Warn("failed to render status", zap.Error(err))
	}
}

// announceGameOver prints the banner after the final status so the
// screen clear does not wipe it.
func (g *Game) announceGameOver() {
	if g.hud != nil {
		if err := g.hud.GameOver(); err != nil {
			logger.Warn("failed to render game over", zap.Error(err))
		}
	}
	// Let the last cue finish before the device closes.
	if g.audio.IsInitialized() {
		time.Sleep(gameOverLinger)
	}
}

const gameOverLinger = 1200 * time.Millisecond

// Close releases every resource in reverse order of creation.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.assets != nil {
		hits, misses := g.assets.CacheStats()
		logger.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
		g.assets.Close()
	}
	if len(g.textures) > 0 {
		texture.Delete(g.textures...)
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
