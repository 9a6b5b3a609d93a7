// Package world holds the session state, the item lifecycle and the per-frame game sequence.
package world

const (
	// MaxHP is the starting and maximum HP.
	MaxHP = 100
	// MaxShield is the shield pool size; collecting a shield item refills it.
	MaxShield = 100
	// InitialItemSpeed is the fall speed baseline at the start of a run.
	InitialItemSpeed = 1.5
	// SpeedIncrement is added to the fall speed baseline on every collection.
	SpeedIncrement = 0.1
	// InitialSpawnX is the spawn walk's starting point (screen centre).
	InitialSpawnX = 400
)

// Session is the mutable state of one run. It is owned by the game loop
// and passed to every step that reads or changes it.
type Session struct {
	HP     float32
	Shield float32
	Score  int

	// ItemSpeed is the fall speed baseline for new spawns. It only grows.
	ItemSpeed float32
	// LastSpawnX bounds the next spawn so items walk across the screen.
	LastSpawnX float32

	Collections int
	GameOver    bool
}

// NewSession returns the state at the start of a run.
func NewSession() *Session {
	return &Session{
		HP:         MaxHP,
		ItemSpeed:  InitialItemSpeed,
		LastSpawnX: InitialSpawnX,
	}
}

// ApplyDamage takes damage from the shield first and the remainder from HP.
// It returns how much the shield absorbed and how much reached HP.
func (s *Session) ApplyDamage(damage float32) (absorbed, taken float32) {
	if s.Shield > 0 {
		absorbed = min(damage, s.Shield)
		s.Shield -= absorbed
		damage -= absorbed
	}
	if damage > 0 {
		s.HP -= damage
		taken = damage
	}
	return absorbed, taken
}

// ClampedHP returns HP limited to [0, MaxHP] for display.
func (s *Session) ClampedHP() float32 {
	return clamp(s.HP, 0, MaxHP)
}

// ClampedShield returns the shield limited to [0, MaxShield] for display.
func (s *Session) ClampedShield() float32 {
	return clamp(s.Shield, 0, MaxShield)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
