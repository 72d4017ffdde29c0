package generator

import (
	"testing"

	"github.com/leterax/go-voxels/pkg/voxel"
)

func voxelPos(x, y, z int32) voxel.Pos { return voxel.Pos{X: x, Y: y, Z: z} }

func TestFlatChunkBelowGroundIsUniformStone(t *testing.T) {
	c := Flat(voxelPos(0, -1, 0), 100)
	if !c.IsUniform() || c.Get(0, 0, 0) != TileStone {
		t.Fatalf("expected uniform stone chunk, got mode=%s tile=%v", c.Mode(), c.Get(0, 0, 0))
	}
}

func TestFlatChunkAboveGroundIsUniformAir(t *testing.T) {
	c := Flat(voxelPos(0, 100, 0), -10)
	if !c.IsUniform() || c.Get(0, 0, 0) != TileAir {
		t.Fatalf("expected uniform air chunk, got mode=%s tile=%v", c.Mode(), c.Get(0, 0, 0))
	}
}

func TestFlatChunkSplitsAtGroundLevel(t *testing.T) {
	c := Flat(voxelPos(0, 0, 0), 15)
	if c.IsUniform() {
		t.Fatalf("expected a mixed chunk straddling ground level")
	}
	if c.Get(0, 0, 0) != TileStone {
		t.Fatalf("expected stone at y=0 below ground level 15")
	}
	if c.Get(0, 31, 0) != TileAir {
		t.Fatalf("expected air at y=31 above ground level 15")
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	c := Checkerboard(voxelPos(0, 0, 0))
	if c.Get(0, 0, 0) != TileStone {
		t.Fatalf("expected (0,0,0) to be stone")
	}
	if c.Get(1, 0, 0) != TileAir {
		t.Fatalf("expected (1,0,0) to be air")
	}
}
