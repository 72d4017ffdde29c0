package mesh

import (
	"testing"

	"github.com/leterax/go-voxels/pkg/art"
	"github.com/leterax/go-voxels/pkg/resource"
	"github.com/leterax/go-voxels/pkg/texture"
	"github.com/leterax/go-voxels/pkg/voxel"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	arts map[voxel.TileId]art.CubeArt
}

func (f *fakeLookup) GetArtForTile(tile voxel.TileId) (art.CubeArt, bool) {
	a, ok := f.arts[tile]
	return a, ok
}

func newTestLayout() *texture.Layout {
	return texture.NewLayout([2]uint32{16, 16}, 64)
}

func TestBuildUniformChunkProducesEmptyMesh(t *testing.T) {
	lookup := &fakeLookup{arts: map[voxel.TileId]art.CubeArt{
		voxel.TileEmpty: {Kind: art.Invisible},
	}}
	c := voxel.NewChunk(voxel.TileEmpty)
	m, needed, err := Build(c, lookup, newTestLayout())
	require.NoError(t, err)
	require.True(t, m.Empty())
	require.Empty(t, needed)
}

func TestBuildSingleOpaqueCubeEmitsAllSixFaces(t *testing.T) {
	stone := resource.FromBytes([]byte("stone"))
	lookup := &fakeLookup{arts: map[voxel.TileId]art.CubeArt{
		voxel.TileEmpty: {Kind: art.Invisible},
		1:               {Kind: art.Single, Texture: stone, CullSelf: true, CullOthers: true},
	}}
	c := voxel.NewChunk(voxel.TileEmpty)
	c.Set(5, 5, 5, 1)
	m, needed, err := Build(c, lookup, newTestLayout())
	require.NoError(t, err)
	require.Len(t, m.Vertices, 36)
	require.Equal(t, []resource.ID{stone}, needed)
}

func TestBuildAdjacentCubesCullSharedFace(t *testing.T) {
	stone := resource.FromBytes([]byte("stone"))
	lookup := &fakeLookup{arts: map[voxel.TileId]art.CubeArt{
		voxel.TileEmpty: {Kind: art.Invisible},
		1:               {Kind: art.Single, Texture: stone, CullSelf: true, CullOthers: true},
	}}
	c := voxel.NewChunk(voxel.TileEmpty)
	c.Set(5, 5, 5, 1)
	c.Set(6, 5, 5, 1)
	m, _, err := Build(c, lookup, newTestLayout())
	require.NoError(t, err)
	require.Len(t, m.Vertices, 60)
}

func TestBuildBoundaryFaceNeverCulled(t *testing.T) {
	stone := resource.FromBytes([]byte("stone"))
	lookup := &fakeLookup{arts: map[voxel.TileId]art.CubeArt{
		voxel.TileEmpty: {Kind: art.Invisible},
		1:               {Kind: art.Single, Texture: stone, CullSelf: true, CullOthers: true},
	}}
	c := voxel.NewChunk(voxel.TileEmpty)
	c.Set(0, 0, 0, 1)
	m, _, err := Build(c, lookup, newTestLayout())
	require.NoError(t, err)
	require.Len(t, m.Vertices, 36)
}

func TestBuildNoCullOthersKeepsBothFaces(t *testing.T) {
	stoneA := resource.FromBytes([]byte("stoneA"))
	stoneB := resource.FromBytes([]byte("stoneB"))
	lookup := &fakeLookup{arts: map[voxel.TileId]art.CubeArt{
		voxel.TileEmpty: {Kind: art.Invisible},
		1:               {Kind: art.Single, Texture: stoneA, CullSelf: true, CullOthers: false},
		2:               {Kind: art.Single, Texture: stoneB, CullSelf: true, CullOthers: false},
	}}
	c := voxel.NewChunk(voxel.TileEmpty)
	c.Set(5, 5, 5, 1)
	c.Set(6, 5, 5, 2)
	m, _, err := Build(c, lookup, newTestLayout())
	require.NoError(t, err)
	require.Len(t, m.Vertices, 72)
}
