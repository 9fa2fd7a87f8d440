package estimate

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		hours int
		level int
		tier  Tier
	}{
		{0, 1, TierNormal},
		{12, 1, TierNormal},
		{20, 1, TierNormal},
		{21, 2, TierNormal},
		{40, 2, TierNormal},
		{41, 3, TierMedium},
		{45, 3, TierMedium},
		{60, 3, TierMedium},
		{61, 4, TierHigh},
		{80, 4, TierHigh},
		{81, 5, TierHigh},
		{85, 5, TierHigh},
		{10000, 5, TierHigh},
	}

	for _, tt := range tests {
		got := Classify(tt.hours)
		if got.Level != tt.level || got.Tier != tt.tier {
			t.Errorf("Classify(%d) = %+v, want level %d tier %s", tt.hours, got, tt.level, tt.tier)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := Classify(0).Level
	for h := 1; h <= 200; h++ {
		level := Classify(h).Level
		if level < prev {
			t.Fatalf("level decreased at %d hours: %d -> %d", h, prev, level)
		}
		if level != prev {
			switch h {
			case 21, 41, 61, 81:
			default:
				t.Fatalf("level stepped at %d hours, expected only past 20/40/60/80", h)
			}
		}
		prev = level
	}
}

func TestTierFor(t *testing.T) {
	want := map[int]Tier{1: TierNormal, 2: TierNormal, 3: TierMedium, 4: TierHigh, 5: TierHigh}
	for level, tier := range want {
		if got := TierFor(level); got != tier {
			t.Errorf("TierFor(%d) = %s, want %s", level, got, tier)
		}
	}
}

func TestActiveBars(t *testing.T) {
	c := Classify(45)
	for i := 0; i < MaxLevel; i++ {
		if got, want := c.Active(i), i < 3; got != want {
			t.Errorf("bar %d active = %v, want %v", i, got, want)
		}
	}
}
