package world

import (
	"math/rand"

	"github.com/Faultbox/shogunato/internal/game/entity"
)

// Category classifies a falling item. It decides what a collection grants.
type Category uint8

const (
	CategoryCommonA Category = iota
	CategoryCommonB
	CategorySpecial // +5 score
	CategoryShield  // refills the shield
	categoryCount
)

// CategoryCount is the number of item categories, and the size of the texture table.
const CategoryCount = int(categoryCount)

// String returns a short name used in log fields.
func (c Category) String() string {
	switch c {
	case CategoryCommonA:
		return "common_a"
	case CategoryCommonB:
		return "common_b"
	case CategorySpecial:
		return "special"
	case CategoryShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Spawn and damage constants.
const (
	GroundY = 100

	SpawnMinX   = 10
	SpawnMaxX   = 790
	SpawnSpread = 250
	SpawnMinY   = 650
	SpawnMaxY   = 3000

	DamageMin = 5
	DamageMax = 20

	CommonPoints  = 1
	SpecialPoints = 5

	// SpeedJitter is the relative fall speed change applied to two thirds of spawns.
	SpeedJitter = 0.1
)

// Item is a falling sprite with its category.
type Item struct {
	*entity.Sprite
	Category Category
}

// Spawner places items, lets them fall and resolves collections and ground hits.
type Spawner struct {
	session  *Session
	rng      *rand.Rand
	textures [CategoryCount]uint32
}

// NewSpawner creates a spawner. textures maps each category to its texture handle.
func NewSpawner(session *Session, rng *rand.Rand, textures [CategoryCount]uint32) *Spawner {
	return &Spawner{
		session:  session,
		rng:      rng,
		textures: textures,
	}
}

// SpawnBounds returns the x range the next spawn may use after a spawn at lastX.
func SpawnBounds(lastX float32) (lo, hi int) {
	hi = int(lastX) + SpawnSpread
	if hi > SpawnMaxX {
		hi = SpawnMaxX
	}
	lo = int(lastX) - SpawnSpread
	if lo < SpawnMinX {
		lo = SpawnMinX
	}
	return lo, hi
}

// Spawn puts the item above the screen at a position near the previous spawn,
// with a random category and a fall speed around the current baseline.
func (sp *Spawner) Spawn(it *Item) {
	lo, hi := SpawnBounds(sp.session.LastSpawnX)
	it.Pos[0] = float32(sp.rng.Intn(hi-lo+1) + lo)
	sp.session.LastSpawnX = it.Pos[0]
	it.Pos[1] = float32(sp.rng.Intn(SpawnMaxY-SpawnMinY+1) + SpawnMinY)

	it.Category = Category(sp.rng.Intn(CategoryCount))
	it.Texture = sp.textures[it.Category]

	it.Speed = sp.session.ItemSpeed
	switch sp.rng.Intn(3) {
	case 1:
		it.Speed += it.Speed * SpeedJitter
	case 2:
		it.Speed -= it.Speed * SpeedJitter
	}
}

// Update lets the item fall one step. An item at or below the ground deals
// damage and respawns; ok reports whether that happened.
func (sp *Spawner) Update(it *Item) (ev Event, ok bool) {
	if it.Pos.Y() > GroundY {
		it.Pos[1] -= it.Speed
		return Event{}, false
	}

	damage := float32(sp.rng.Intn(DamageMax-DamageMin+1) + DamageMin)
	absorbed, taken := sp.session.ApplyDamage(damage)
	ev = Event{
		Kind:     EventDamage,
		Category: it.Category,
		Damage:   damage,
		Absorbed: absorbed,
		Taken:    taken,
	}

	sp.Spawn(it)
	return ev, true
}

// Collect resolves the player catching the item and respawns it.
func (sp *Spawner) Collect(it *Item) Event {
	s := sp.session
	ev := Event{Kind: EventCollected, Category: it.Category}

	switch it.Category {
	case CategorySpecial:
		s.Score += SpecialPoints
		ev.Points = SpecialPoints
	case CategoryShield:
		s.Shield = MaxShield
	default:
		s.Score += CommonPoints
		ev.Points = CommonPoints
	}

	s.ItemSpeed += SpeedIncrement
	s.Collections++

	sp.Spawn(it)
	return ev
}
