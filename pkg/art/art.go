// Package art builds the per-chunk ArtCache the mesher consults while
// walking a chunk's cells: a mapping from a chunk's internal palette
// index straight to renderable per-side texture slots, built once per
// mesh so the mesher's hot loop never has to re-resolve a TileId.
package art

import (
	"github.com/leterax/go-voxels/pkg/resource"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// TextureKind tags which variant of CubeArt.Textures is populated.
type TextureKind int

const (
	Invisible TextureKind = iota
	Single
	PerSide
)

// CubeArt is the renderable description of a tile: its per-side
// texture references plus culling flags, as returned by a Lookup
// collaborator.
type CubeArt struct {
	Kind     TextureKind
	Texture  resource.ID                // valid when Kind == Single
	Textures [voxel.NumSides]resource.ID // valid when Kind == PerSide, indexed by Side.Index()

	CullSelf   bool
	CullOthers bool
}

// Lookup is the art-lookup collaborator interface the core consumes.
type Lookup interface {
	GetArtForTile(tile voxel.TileId) (CubeArt, bool)
}

// Entry is one chunk-relative cache row: a texture slot per side, plus
// the visibility/culling flags the mesher's cull predicate reads.
type Entry struct {
	Slots      [voxel.NumSides]uint32
	VisibleThisPass bool
	CullSelf        bool
	CullOthers      bool
}

// missingEntry is substituted whenever an art lookup fails or a raw
// index has no corresponding palette entry (which should only occur
// in a corrupt chunk).
var missingEntry = Entry{
	Slots: [voxel.NumSides]uint32{
		0, 0, 0, 0, 0, 0, // all point at the reserved "missing" slot
	},
	VisibleThisPass: true,
	CullSelf:        false,
	CullOthers:      false,
}
