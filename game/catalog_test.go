package game

import (
	"image/color"
	"math"
	"testing"
)

func TestGetFireModeFallsBack(t *testing.T) {
	if got := GetFireMode("plasma").ID; got != FireModeNormal {
		t.Errorf("GetFireMode(unknown).ID = %q, want normal", got)
	}
	for _, id := range FireModeOrder {
		mode := GetFireMode(id)
		if mode.ID != id {
			t.Errorf("GetFireMode(%q).ID = %q", id, mode.ID)
		}
		if mode.Count < 1 || mode.Cooldown <= 0 || mode.Damage < 1 {
			t.Errorf("%q has an unusable config: %+v", id, mode)
		}
	}
}

func TestFireModeForDigit(t *testing.T) {
	tests := []struct {
		digit int
		want  FireModeID
		ok    bool
	}{
		{1, FireModeNormal, true},
		{7, FireModeOverwhelming, true},
		{9, FireModeWideHoming, true},
		{0, "", false},
		{10, "", false},
	}
	for _, tt := range tests {
		got, ok := FireModeForDigit(tt.digit)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FireModeForDigit(%d) = %q, %v; want %q, %v", tt.digit, got, ok, tt.want, tt.ok)
		}
	}
}

func TestVolleySpreadIsEven(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.spawnVolley(GetFireMode(FireModeWide))
	if len(s.bullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(s.bullets))
	}

	step := 10 * math.Pi / 180
	for i, b := range s.bullets {
		want := -math.Pi/2 + float64(i-1)*step
		if got := math.Atan2(b.VY, b.VX); !approxEqual(got, want) {
			t.Errorf("bullet %d angle = %v, want %v", i, got, want)
		}
		if b.Homing != nil {
			t.Errorf("wide bullets should not home")
		}
	}
}

func TestHomingVolleyAssignsTargetsRoundRobin(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	a := regularEnemy(200, 100, EnemyFighter)
	b := regularEnemy(700, 100, EnemyFighter)
	s.enemies = []*Enemy{a, bossEnemy(450, 150, 20, 100), b}

	s.spawnVolley(GetFireMode(FireModeHoming))
	if len(s.bullets) != 5 {
		t.Fatalf("bullets = %d, want 5", len(s.bullets))
	}

	want := []*Enemy{a, b, a, b, a}
	for i, bullet := range s.bullets {
		if bullet.Homing == nil || bullet.Homing.Target != want[i] {
			t.Fatalf("bullet %d has the wrong target", i)
		}
	}

	first := s.bullets[0]
	aim := math.Atan2(a.Y-first.Y, a.X-first.X)
	if got := math.Atan2(first.VY, first.VX); !approxEqual(got, aim) {
		t.Errorf("homing bullet launched at %v, want aimed at %v", got, aim)
	}
}

func TestWideHomingKeepsSpread(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)
	s.enemies = []*Enemy{regularEnemy(100, 100, EnemyFighter)}

	mode := GetFireMode(FireModeWideHoming)
	s.spawnVolley(mode)

	left := math.Atan2(s.bullets[0].VY, s.bullets[0].VX)
	if want := -math.Pi/2 - mode.Spread*math.Pi/360; !approxEqual(left, want) {
		t.Errorf("leftmost angle = %v, want %v", left, want)
	}
}

func TestPickEnemyKind(t *testing.T) {
	tests := []struct {
		level int
		roll  float64
		want  EnemyKind
	}{
		{1, 0.99, EnemyFighter},
		{2, 0.59, EnemyFighter},
		{2, 0.6, EnemyInterceptor},
		{3, 0.75, EnemyBomber},
		{4, 0.71, EnemyAdvanced},
		{6, 0.85, EnemyInterceptor},
		{10, 0.0, EnemyDefender},
		{15, 0.5, EnemyDefender},
		{0, 0.5, EnemyFighter},
	}
	for _, tt := range tests {
		if got := PickEnemyKind(tt.level, tt.roll); got != tt.want {
			t.Errorf("PickEnemyKind(%d, %v) = %v, want %v", tt.level, tt.roll, got, tt.want)
		}
	}
}

func TestBossKillThreshold(t *testing.T) {
	if got := BossKillThreshold(1); got != 15 {
		t.Errorf("BossKillThreshold(1) = %d, want 15", got)
	}
	if got := BossKillThreshold(10); got != 60 {
		t.Errorf("BossKillThreshold(10) = %d, want 60", got)
	}
	if got := BossKillThreshold(12); got != 60 {
		t.Errorf("BossKillThreshold(12) = %d, want 60", got)
	}
}

func TestInputDirection(t *testing.T) {
	var in InputState
	in.Set(ActionLeft, true)
	in.Set(ActionRight, true)
	in.Set(ActionDown, true)

	dx, dy := in.Direction()
	if dx != 0 || dy != 1 {
		t.Errorf("Direction() = (%v, %v), want (0, 1)", dx, dy)
	}
}

func TestLevelPaletteClamps(t *testing.T) {
	if LevelPalette(0) != LevelPalette(1) {
		t.Error("level 0 should use the level 1 palette")
	}
	if LevelPalette(14) != LevelPalette(10) {
		t.Error("levels past 10 should use the level 10 palette")
	}
	if LevelPalette(2).Pod == LevelPalette(3).Pod {
		t.Error("adjacent levels share a pod colour")
	}
	if got := LevelPalette(10).Accent; got != (color.RGBA{0xaa, 0x33, 0x66, 0xff}) {
		t.Errorf("level 10 accent = %v", got)
	}
}
