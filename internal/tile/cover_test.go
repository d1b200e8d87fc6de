package tile_test

import (
	"testing"

	"github.com/vovakirdan/gridsim/internal/tile"
)

func TestGroundTraits(t *testing.T) {
	testCases := []struct {
		ground  tile.Ground
		land    bool
		water   bool
		fertile bool
	}{
		{tile.Grass, true, false, true},
		{tile.Water, false, true, false},
		{tile.Bricks, true, false, false},
		{tile.Gravel, true, false, false},
		{tile.LeafLitter, true, false, true},
		{tile.Swamp, false, true, true},
		{tile.Sand, true, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.ground.String(), func(t *testing.T) {
			if got := tc.ground.IsLand(); got != tc.land {
				t.Errorf("IsLand() = %v, expected %v", got, tc.land)
			}
			if got := tc.ground.IsWater(); got != tc.water {
				t.Errorf("IsWater() = %v, expected %v", got, tc.water)
			}
			if got := tc.ground.IsFertile(); got != tc.fertile {
				t.Errorf("IsFertile() = %v, expected %v", got, tc.fertile)
			}
		})
	}
}

func TestParseGround(t *testing.T) {
	for _, g := range tile.Grounds {
		parsed, ok := tile.ParseGround(g.String())
		if !ok || parsed != g {
			t.Errorf("ParseGround(%q) = %v, %v", g.String(), parsed, ok)
		}
	}
	if _, ok := tile.ParseGround("Lava"); ok {
		t.Error("ParseGround(\"Lava\") should fail")
	}
}

func TestCanGoOnGround(t *testing.T) {
	road := tile.Road(tile.Quarters{})
	fullRoad := tile.Road(tile.Quarters{tile.RoadGravel, tile.RoadGravel, tile.RoadGravel, tile.RoadGravel})

	for _, g := range tile.Grounds {
		t.Run(g.String(), func(t *testing.T) {
			if !tile.NoCover.CanGoOnGround(g) {
				t.Error("empty cover must fit on every ground")
			}
			if got, want := tile.Tree.CanGoOnGround(g), g.IsLand() && g.IsFertile(); got != want {
				t.Errorf("Tree: got %v, expected %v", got, want)
			}
			if got, want := tile.TestBuilding.CanGoOnGround(g), g.IsLand(); got != want {
				t.Errorf("TestBuilding: got %v, expected %v", got, want)
			}
			if got, want := road.CanGoOnGround(g), g.IsLand(); got != want {
				t.Errorf("Road: got %v, expected %v", got, want)
			}
			if road.CanGoOnGround(g) != fullRoad.CanGoOnGround(g) {
				t.Error("road legality must not depend on quarters")
			}
		})
	}
}

func TestQuartersMerge(t *testing.T) {
	existing := tile.Quarters{}.With(tile.North, tile.RoadGravel)
	incoming := tile.Quarters{}.With(tile.South, tile.RoadGravel).With(tile.North, tile.RoadNone)

	merged := existing.Merge(incoming)
	want := tile.Quarters{tile.RoadGravel, tile.RoadNone, tile.RoadGravel, tile.RoadNone}
	if merged != want {
		t.Errorf("Merge() = %v, expected %v", merged, want)
	}

	// Filled slots survive a merge with an empty array.
	if got := merged.Merge(tile.Quarters{}); got != merged {
		t.Errorf("Merge(empty) changed quarters: %v", got)
	}
}

func TestDirections(t *testing.T) {
	for i, d := range tile.Directions {
		if tile.Dir4(i) != d {
			t.Errorf("Dir4(%d) = %v, expected %v", i, tile.Dir4(i), d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}

	prev, next := tile.NorthSouth.Ends()
	if prev != tile.North || next != tile.South {
		t.Errorf("NorthSouth.Ends() = %v, %v", prev, next)
	}
	prev, next = tile.EastWest.Ends()
	if prev != tile.West || next != tile.East {
		t.Errorf("EastWest.Ends() = %v, %v", prev, next)
	}
}

func TestDir4Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dir4(4) should panic")
		}
	}()
	tile.Dir4(4)
}
