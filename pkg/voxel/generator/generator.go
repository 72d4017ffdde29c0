// Package generator produces synthetic chunks for the demo entrypoint
// and tests, standing in for the network/disk-backed chunk sources the
// spec leaves unspecified. It has no bearing on chunk semantics itself
// — it only ever calls the public voxel.Chunk API.
package generator

import "github.com/leterax/go-voxels/pkg/voxel"

// TileAir and TileStone are the two tile ids the generators below
// place; a real game would resolve these through its own tile
// registry instead of hardcoding ids.
const (
	TileAir   voxel.TileId = voxel.TileEmpty
	TileStone voxel.TileId = 1
)

// Flat returns a chunk that is solid stone below groundHeight (measured
// in world Y, inclusive) and air above it. A chunk entirely above or
// entirely below groundHeight stays Uniform.
func Flat(cpos voxel.Pos, groundHeight int32) *voxel.Chunk {
	base := voxel.ChunkToWorldPos(cpos)
	top := base.Y + voxel.ChunkSize - 1
	if top <= groundHeight {
		return voxel.NewChunk(TileStone)
	}
	if base.Y > groundHeight {
		return voxel.NewChunk(TileAir)
	}

	c := voxel.NewChunk(TileAir)
	voxel.Range{Min: voxel.Pos{}, Max: voxel.Pos{X: voxel.ChunkSize, Y: voxel.ChunkSize, Z: voxel.ChunkSize}}.ForEach(func(p voxel.Pos) bool {
		if base.Y+p.Y <= groundHeight {
			c.Set(int(p.X), int(p.Y), int(p.Z), TileStone)
		}
		return true
	})
	return c
}

// Checkerboard alternates single-tile columns of stone and air, useful
// for exercising neighbor culling and the Small palette tier in tests
// and demos without needing 256 distinct tiles.
func Checkerboard(cpos voxel.Pos) *voxel.Chunk {
	base := voxel.ChunkToWorldPos(cpos)
	c := voxel.NewChunk(TileAir)
	voxel.Range{Min: voxel.Pos{}, Max: voxel.Pos{X: voxel.ChunkSize, Y: voxel.ChunkSize, Z: voxel.ChunkSize}}.ForEach(func(p voxel.Pos) bool {
		wx, wz := base.X+p.X, base.Z+p.Z
		if (wx+wz)%2 == 0 {
			c.Set(int(p.X), int(p.Y), int(p.Z), TileStone)
		}
		return true
	})
	return c
}
