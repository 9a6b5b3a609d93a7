package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Faultbox/shogunato/internal/game/entity"
)

var testTextures = [CategoryCount]uint32{11, 12, 13, 14}

func newTestSpawner(seed int64) (*Spawner, *Session) {
	s := NewSession()
	return NewSpawner(s, rand.New(rand.NewSource(seed)), testTextures), s
}

func newTestItem() *Item {
	return &Item{Sprite: entity.New(nil, entity.Config{})}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestSpawnBounds(t *testing.T) {
	tests := []struct {
		lastX  float32
		lo, hi int
	}{
		{400, 150, 650},
		{100, 10, 350},
		{700, 450, 790},
		{10, 10, 260},
		{790, 540, 790},
	}
	for _, tt := range tests {
		lo, hi := SpawnBounds(tt.lastX)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("SpawnBounds(%v) = [%d, %d], want [%d, %d]", tt.lastX, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestSpawnStaysNearPreviousSpawn(t *testing.T) {
	sp, s := newTestSpawner(1)
	it := newTestItem()

	for i := 0; i < 2000; i++ {
		prev := s.LastSpawnX
		lo, hi := SpawnBounds(prev)

		sp.Spawn(it)

		x := it.Pos.X()
		if x < float32(lo) || x > float32(hi) {
			t.Fatalf("spawn %d: x = %v outside [%d, %d] after %v", i, x, lo, hi, prev)
		}
		if s.LastSpawnX != x {
			t.Fatalf("spawn %d: LastSpawnX = %v, want %v", i, s.LastSpawnX, x)
		}
		if y := it.Pos.Y(); y < SpawnMinY || y > SpawnMaxY {
			t.Fatalf("spawn %d: y = %v outside [%d, %d]", i, y, SpawnMinY, SpawnMaxY)
		}
	}
}

func TestSpawnCategoryAndSpeed(t *testing.T) {
	sp, s := newTestSpawner(2)
	s.ItemSpeed = 2
	it := newTestItem()

	seenCategory := map[Category]bool{}
	seenSpeed := map[string]bool{}
	for i := 0; i < 500; i++ {
		sp.Spawn(it)

		if int(it.Category) >= CategoryCount {
			t.Fatalf("Category = %d out of range", it.Category)
		}
		if it.Texture != testTextures[it.Category] {
			t.Fatalf("Texture = %d, want %d for %v", it.Texture, testTextures[it.Category], it.Category)
		}
		seenCategory[it.Category] = true

		switch {
		case approx(it.Speed, 2):
			seenSpeed["same"] = true
		case approx(it.Speed, 2.2):
			seenSpeed["faster"] = true
		case approx(it.Speed, 1.8):
			seenSpeed["slower"] = true
		default:
			t.Fatalf("Speed = %v, want 1.8, 2 or 2.2", it.Speed)
		}
	}

	if len(seenCategory) != CategoryCount {
		t.Errorf("saw %d categories, want %d", len(seenCategory), CategoryCount)
	}
	if len(seenSpeed) != 3 {
		t.Errorf("saw speed variants %v, want all three", seenSpeed)
	}
}

func TestUpdateFalls(t *testing.T) {
	sp, s := newTestSpawner(3)
	it := newTestItem()
	it.Pos[1] = 500
	it.Speed = 2.5

	if _, ok := sp.Update(it); ok {
		t.Fatal("Update reported a ground hit above the ground")
	}
	if it.Pos.Y() != 497.5 {
		t.Errorf("Y = %v, want 497.5", it.Pos.Y())
	}
	if s.HP != MaxHP {
		t.Errorf("HP = %v, want %v", s.HP, MaxHP)
	}
}

func TestUpdateJustAboveGroundStillFalls(t *testing.T) {
	sp, _ := newTestSpawner(3)
	it := newTestItem()
	it.Pos[1] = GroundY + 0.5
	it.Speed = 1

	if _, ok := sp.Update(it); ok {
		t.Fatal("Update reported a ground hit above the ground")
	}
	if _, ok := sp.Update(it); !ok {
		t.Fatal("Update at the ground should deal damage")
	}
}

func TestUpdateAtGroundDealsDamage(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		sp, s := newTestSpawner(seed)
		it := newTestItem()
		it.Pos[1] = GroundY

		ev, ok := sp.Update(it)
		if !ok {
			t.Fatalf("seed %d: Update at the ground reported no damage", seed)
		}
		if ev.Kind != EventDamage {
			t.Fatalf("seed %d: Kind = %v, want damage", seed, ev.Kind)
		}
		if ev.Damage < DamageMin || ev.Damage > DamageMax {
			t.Fatalf("seed %d: Damage = %v outside [%d, %d]", seed, ev.Damage, DamageMin, DamageMax)
		}
		if s.HP != MaxHP-ev.Damage || ev.Taken != ev.Damage {
			t.Fatalf("seed %d: HP = %v, Taken = %v, want %v", seed, s.HP, ev.Taken, MaxHP-ev.Damage)
		}
		if it.Pos.Y() < SpawnMinY {
			t.Fatalf("seed %d: item not respawned, Y = %v", seed, it.Pos.Y())
		}
	}
}

func TestUpdateAtGroundUsesShieldFirst(t *testing.T) {
	sp, s := newTestSpawner(4)
	s.Shield = 100
	it := newTestItem()
	it.Pos[1] = 0

	ev, _ := sp.Update(it)
	if s.HP != MaxHP {
		t.Errorf("HP = %v, want %v while shielded", s.HP, MaxHP)
	}
	if s.Shield != 100-ev.Damage || ev.Absorbed != ev.Damage {
		t.Errorf("Shield = %v, Absorbed = %v, want %v", s.Shield, ev.Absorbed, 100-ev.Damage)
	}
}

func TestCollect(t *testing.T) {
	tests := []struct {
		category   Category
		wantScore  int
		wantShield float32
	}{
		{CategoryCommonA, 1, 0},
		{CategoryCommonB, 1, 0},
		{CategorySpecial, 5, 0},
		{CategoryShield, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			sp, s := newTestSpawner(5)
			it := newTestItem()
			it.Category = tt.category

			ev := sp.Collect(it)

			if s.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", s.Score, tt.wantScore)
			}
			if s.Shield != tt.wantShield {
				t.Errorf("Shield = %v, want %v", s.Shield, tt.wantShield)
			}
			if ev.Kind != EventCollected || ev.Category != tt.category || ev.Points != tt.wantScore {
				t.Errorf("event = %+v", ev)
			}
			if it.Pos.Y() < SpawnMinY {
				t.Errorf("item not respawned, Y = %v", it.Pos.Y())
			}
		})
	}
}

func TestCollectShieldOverwrites(t *testing.T) {
	sp, s := newTestSpawner(6)
	s.Shield = 40
	s.Score = 7
	it := newTestItem()
	it.Category = CategoryShield

	sp.Collect(it)
	if s.Shield != MaxShield {
		t.Errorf("Shield = %v, want %v", s.Shield, MaxShield)
	}
	if s.Score != 7 {
		t.Errorf("Score = %d, want 7", s.Score)
	}
}

func TestCollectRaisesItemSpeed(t *testing.T) {
	sp, s := newTestSpawner(7)
	it := newTestItem()

	prev := s.ItemSpeed
	for n := 1; n <= 100; n++ {
		it.Category = Category(n % CategoryCount)
		sp.Collect(it)

		want := float32(InitialItemSpeed + SpeedIncrement*float64(n))
		if !approx(s.ItemSpeed, want) {
			t.Fatalf("after %d collections ItemSpeed = %v, want %v", n, s.ItemSpeed, want)
		}
		if s.ItemSpeed < prev {
			t.Fatalf("ItemSpeed decreased from %v to %v", prev, s.ItemSpeed)
		}
		prev = s.ItemSpeed
	}
	if s.Collections != 100 {
		t.Errorf("Collections = %d, want 100", s.Collections)
	}
}
