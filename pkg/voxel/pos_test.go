package voxel

import "testing"

func TestSideOpposite(t *testing.T) {
	cases := map[Side]Side{
		PosX: NegX, NegX: PosX,
		PosY: NegY, NegY: PosY,
		PosZ: NegZ, NegZ: PosZ,
	}
	for side, want := range cases {
		if got := side.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", side, got, want)
		}
	}
}

func TestSidesStableOrder(t *testing.T) {
	want := [6]Side{PosX, NegX, PosY, NegY, PosZ, NegZ}
	if Sides != want {
		t.Errorf("Sides = %v, want %v", Sides, want)
	}
	for i, s := range Sides {
		if s.Index() != i {
			t.Errorf("Sides[%d].Index() = %d", i, s.Index())
		}
	}
}

func TestNeighborUsesOffset(t *testing.T) {
	p := Pos{1, 1, 1}
	if got := p.Neighbor(PosX); got != (Pos{2, 1, 1}) {
		t.Errorf("Neighbor(PosX) = %v", got)
	}
	if got := p.Neighbor(NegZ); got != (Pos{1, 1, 0}) {
		t.Errorf("Neighbor(NegZ) = %v", got)
	}
}

func TestRangeContainsAndVolume(t *testing.T) {
	r := Range{Min: Pos{0, 0, 0}, Max: Pos{2, 2, 2}}
	if r.Volume() != 8 {
		t.Errorf("Volume() = %d, want 8", r.Volume())
	}
	if !r.Contains(Pos{1, 1, 1}) {
		t.Errorf("expected {1,1,1} to be contained")
	}
	if r.Contains(Pos{2, 0, 0}) {
		t.Errorf("Max should be exclusive")
	}
}

func TestRangeForEachOrderAndCount(t *testing.T) {
	r := Range{Min: Pos{0, 0, 0}, Max: Pos{2, 2, 1}}
	var visited []Pos
	r.ForEach(func(p Pos) bool {
		visited = append(visited, p)
		return true
	})
	want := []Pos{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	if len(visited) != len(want) {
		t.Fatalf("visited %d positions, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestRangeForEachStopsEarly(t *testing.T) {
	r := Range{Min: Pos{0, 0, 0}, Max: Pos{4, 4, 4}}
	count := 0
	r.ForEach(func(Pos) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("ForEach visited %d positions, want exactly 3", count)
	}
}
