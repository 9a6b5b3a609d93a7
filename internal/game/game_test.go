package game

import (
	"testing"

	"github.com/Faultbox/shogunato/internal/engine/audio"
	"github.com/Faultbox/shogunato/internal/game/world"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name   string
		ev     world.Event
		want   audio.Cue
		wantOK bool
	}{
		{"common A", world.Event{Kind: world.EventCollected, Category: world.CategoryCommonA}, audio.CueCollect, true},
		{"common B", world.Event{Kind: world.EventCollected, Category: world.CategoryCommonB}, audio.CueCollect, true},
		{"special", world.Event{Kind: world.EventCollected, Category: world.CategorySpecial}, audio.CueSpecial, true},
		{"shield", world.Event{Kind: world.EventCollected, Category: world.CategoryShield}, audio.CueShield, true},
		{"damage", world.Event{Kind: world.EventDamage, Damage: 12}, audio.CueDamage, true},
		{"game over", world.Event{Kind: world.EventGameOver}, audio.CueGameOver, true},
		{"unknown kind", world.Event{Kind: world.EventKind(42)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cueFor(tt.ev)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("cueFor() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	if got := seed(42); got != 42 {
		t.Errorf("seed(42) = %d, want 42", got)
	}
	if got := seed(0); got == 0 {
		t.Error("seed(0) did not pick a time-based seed")
	}
}

func TestAssetRoots(t *testing.T) {
	roots := assetRoots("/srv/shogunato")

	if got := roots[len(roots)-1]; got != "/srv/shogunato" {
		t.Errorf("highest priority root = %q, want the configured root", got)
	}
	if got := roots[len(roots)-2]; got != "." {
		t.Errorf("second root = %q, want working directory", got)
	}
}
