package world

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shogunato/internal/game/entity"
)

// Scene layout.
const (
	PlayerRows  = 4
	PlayerCols  = 3
	PlayerScale = 3.0
	PlayerX     = 400
	PlayerY     = 100

	BackgroundScale = 0.4
	BackgroundX     = 400
	BackgroundY     = 300

	ItemScale = 1.5
	ItemCount = 4
)

// Sheet is a loaded texture and its pixel size.
type Sheet struct {
	Texture uint32
	Width   int
	Height  int
}

func (s Sheet) scaled(f float32) mgl32.Vec3 {
	return mgl32.Vec3{float32(s.Width) * f, float32(s.Height) * f, 1}
}

// Assets are the textures a world is built from.
type Assets struct {
	Player     Sheet
	Background Sheet
	Items      [CategoryCount]Sheet
}

// Drawer renders a sprite with its current frame.
type Drawer interface {
	Draw(s *entity.Sprite)
}

// World is the scene: a static background, the player and the falling items.
type World struct {
	Session    *Session
	Background *entity.Sprite
	Player     *entity.Sprite
	Items      []*Item

	spawner *Spawner
}

// New builds the scene and spawns the initial items.
// alloc may be nil when no GPU geometry is needed.
func New(alloc entity.QuadAllocator, assets Assets, rng *rand.Rand) *World {
	session := NewSession()

	var textures [CategoryCount]uint32
	for i, sheet := range assets.Items {
		textures[i] = sheet.Texture
	}

	w := &World{
		Session: session,
		spawner: NewSpawner(session, rng, textures),
	}

	w.Player = entity.New(alloc, entity.Config{
		Texture:  assets.Player.Texture,
		RawSize:  assets.Player.scaled(PlayerScale),
		Position: mgl32.Vec3{PlayerX, PlayerY, 0},
		Rows:     PlayerRows,
		Cols:     PlayerCols,
	})
	w.Player.Row = entity.AnimIdle

	w.Background = entity.New(alloc, entity.Config{
		Texture:  assets.Background.Texture,
		RawSize:  assets.Background.scaled(BackgroundScale),
		Position: mgl32.Vec3{BackgroundX, BackgroundY, 0},
	})

	// All items share the size of the last item sheet.
	itemSize := assets.Items[CategoryCount-1].scaled(ItemScale)
	for i := 0; i < ItemCount; i++ {
		it := &Item{Sprite: entity.New(alloc, entity.Config{RawSize: itemSize})}
		w.spawner.Spawn(it)
		w.Items = append(w.Items, it)
	}

	return w
}

// Frame runs one game step in fixed order: collisions, background, player,
// items, then the game over check. Each item is drawn before it falls, so the
// picture lags the logic by one step.
func (w *World) Frame(now time.Duration, in entity.Controls, d Drawer) []Event {
	var events []Event

	w.Player.ComputeAABB()
	for _, it := range w.Items {
		it.ComputeAABB()
		if entity.Overlaps(w.Player, it.Sprite) {
			events = append(events, w.spawner.Collect(it))
		}
	}

	d.Draw(w.Background)

	entity.Move(w.Player, in)
	w.Player.Animate(now)
	d.Draw(w.Player)

	for _, it := range w.Items {
		d.Draw(it.Sprite)
		if ev, ok := w.spawner.Update(it); ok {
			events = append(events, ev)
		}
	}

	if w.Session.HP <= 0 && !w.Session.GameOver {
		w.Session.GameOver = true
		events = append(events, Event{Kind: EventGameOver})
	}

	return events
}
