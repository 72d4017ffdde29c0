package mesh

import (
	"fmt"

	"github.com/leterax/go-voxels/pkg/art"
	"github.com/leterax/go-voxels/pkg/resource"
	"github.com/leterax/go-voxels/pkg/texture"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// Build meshes a single chunk: it resolves every cell's art through an
// ArtCache, emits one quad per visible face that is not culled by a
// same- or any-tile neighbor, and packs the result into a flat vertex
// buffer. The returned resource IDs are the textures the renderer must
// have resident before this mesh can be drawn; Build itself never
// touches texture contents.
func Build(chunk *voxel.Chunk, lookup art.Lookup, layout *texture.Layout) (ChunkMesh, []resource.ID, error) {
	cache, needed, err := art.Build(chunk, lookup, layout)
	if err != nil {
		return ChunkMesh{}, nil, fmt.Errorf("mesh: build art cache: %w", err)
	}
	if !cache.IsAnyVisible() {
		return ChunkMesh{}, needed, nil
	}

	var verts []PackedVertex
	for i := 0; i < voxel.ChunkSize*voxel.ChunkSize*voxel.ChunkSize; i++ {
		raw := chunk.GetRaw(i)
		entry, ok := cache.GetMapping(raw)
		if !ok {
			panic(fmt.Sprintf("mesh: chunk palette index %d has no art cache entry (corrupt chunk)", raw))
		}
		if !entry.VisibleThisPass {
			continue
		}

		x, y, z := voxel.IndexToXYZ(i)
		for _, side := range voxel.Sides {
			if shouldCull(chunk, cache, i, side, entry) {
				continue
			}
			emitFace(&verts, x, y, z, side, entry.Slots[side.Index()])
		}
	}

	return ChunkMesh{Vertices: verts}, needed, nil
}

// shouldCull applies the mesher's sole culling rule: a face at a chunk
// boundary is always emitted (no neighbor to consult), and otherwise a
// face is culled only if the neighbor is itself visible and either
// this tile culls against itself (same tile on both sides) or culls
// against others (any other opaque-enough tile).
func shouldCull(chunk *voxel.Chunk, cache *art.Cache, i int, side voxel.Side, self art.Entry) bool {
	ni, inside := voxel.NeighborIndex(i, side)
	if !inside {
		return false
	}
	neighborRaw := chunk.GetRaw(ni)
	neighbor, ok := cache.GetMapping(neighborRaw)
	if !ok {
		panic(fmt.Sprintf("mesh: chunk palette index %d has no art cache entry (corrupt chunk)", neighborRaw))
	}
	if !neighbor.VisibleThisPass {
		return false
	}
	sameTile := neighborRaw == chunk.GetRaw(i)
	if sameTile {
		return self.CullSelf
	}
	return self.CullOthers
}

// emitFace appends the six packed vertices of one cube face, translated
// by the cell's local position, to verts.
func emitFace(verts *[]PackedVertex, x, y, z int, side voxel.Side, slot uint32) {
	tmpl := faceTemplates[side.Index()]
	for i, c := range tmpl {
		vx := uint8(x) + c.x
		vy := uint8(y) + c.y
		vz := uint8(z) + c.z
		uHigh, vHigh := faceUV[i][0], faceUV[i][1]
		*verts = append(*verts, PackVertex(vx, vy, vz, slot, uHigh, vHigh))
	}
}
