package voxel

import "testing"

func TestFlatIndexRoundTrip(t *testing.T) {
	for z := 0; z < ChunkSize; z += 7 {
		for y := 0; y < ChunkSize; y += 5 {
			for x := 0; x < ChunkSize; x += 3 {
				i := xyzToIndex(x, y, z)
				gx, gy, gz := indexToXYZ(i)
				if gx != x || gy != y || gz != z {
					t.Fatalf("round trip (%d,%d,%d) -> %d -> (%d,%d,%d)", x, y, z, i, gx, gy, gz)
				}
			}
		}
	}
}

func TestCanonicalIndexFormula(t *testing.T) {
	// i = z*S^2 + y*S + x, per the spec's canonical encoding.
	got := xyzToIndex(1, 2, 3)
	want := 3*ChunkSize*ChunkSize + 2*ChunkSize + 1
	if got != want {
		t.Errorf("xyzToIndex(1,2,3) = %d, want %d", got, want)
	}
}

func TestNeighborIndexBoundaries(t *testing.T) {
	// a cell at the +X edge has no +X neighbor
	edge := xyzToIndex(ChunkSize-1, 0, 0)
	if _, ok := neighborIndex(edge, PosX); ok {
		t.Errorf("expected no +X neighbor at the chunk edge")
	}
	if _, ok := neighborIndex(edge, NegX); !ok {
		t.Errorf("expected a -X neighbor away from the edge")
	}

	origin := xyzToIndex(0, 0, 0)
	if _, ok := neighborIndex(origin, NegY); ok {
		t.Errorf("expected no -Y neighbor at y=0")
	}
	if ni, ok := neighborIndex(origin, PosZ); !ok || ni != xyzToIndex(0, 0, 1) {
		t.Errorf("unexpected +Z neighbor: idx=%d ok=%v", ni, ok)
	}
}

func TestWorldToChunkPosFloorsNegative(t *testing.T) {
	cpos, local := WorldToChunkPos(Pos{-1, 0, 0})
	if cpos != (Pos{-1, 0, 0}) {
		t.Errorf("chunk pos = %v, want {-1,0,0}", cpos)
	}
	if local != (Pos{ChunkSize - 1, 0, 0}) {
		t.Errorf("local pos = %v, want {%d,0,0}", local, ChunkSize-1)
	}
}

func TestChunkToWorldPosInverse(t *testing.T) {
	cpos := Pos{2, -3, 7}
	world := ChunkToWorldPos(cpos)
	back, local := WorldToChunkPos(world)
	if back != cpos || local != (Pos{}) {
		t.Errorf("round trip failed: back=%v local=%v", back, local)
	}
}
