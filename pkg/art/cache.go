package art

import (
	"fmt"
	"log"

	"github.com/leterax/go-voxels/pkg/resource"
	"github.com/leterax/go-voxels/pkg/texture"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// cacheMode mirrors the chunk mode it was built from. Dispatch on this
// tag, never an interface: the structural choice is deliberately the
// same tagged-variant shape Chunk itself uses, not dynamic dispatch —
// the hot path here is tight and should stay branch-predicted.
type cacheMode uint8

const (
	cacheUniform cacheMode = iota
	cacheSmall
	cacheLarge
)

// Cache is the per-chunk lookup from palette index to cube-face art.
// It exists only for the duration of a single mesh build.
type Cache struct {
	mode    cacheMode
	uniform Entry
	small   *[256]Entry
	large   map[uint16]Entry

	anyVisible bool
}

// Build constructs a Cache from chunk by resolving every palette tile
// through lookup, allocating a texture slot per visible side via
// layout. Art-lookup misses substitute the reserved "missing texture"
// entry rather than failing the build. Needed returns the set of
// non-sentinel ResourceIds referenced, for the renderer to preload.
func Build(chunk *voxel.Chunk, lookup Lookup, layout *texture.Layout) (cache *Cache, needed []resource.ID, err error) {
	c := &Cache{}
	switch {
	case chunk.IsUniform():
		c.mode = cacheUniform
	case chunk.IsSmall():
		c.mode = cacheSmall
		c.small = &[256]Entry{}
		for i := range c.small {
			c.small[i] = missingEntry
		}
	default:
		c.mode = cacheLarge
		c.large = make(map[uint16]Entry)
	}

	seen := make(map[resource.ID]struct{})
	chunk.ForEachPaletteEntry(func(idx uint16, tile voxel.TileId) {
		if err != nil {
			return
		}
		entry, refs, buildErr := buildEntry(tile, lookup, layout)
		if buildErr != nil {
			err = buildErr
			return
		}
		for _, rid := range refs {
			if rid == resource.Missing || rid == resource.Pending {
				continue
			}
			if _, ok := seen[rid]; !ok {
				seen[rid] = struct{}{}
				needed = append(needed, rid)
			}
		}
		if entry.VisibleThisPass {
			c.anyVisible = true
		}
		switch c.mode {
		case cacheUniform:
			c.uniform = entry
		case cacheSmall:
			c.small[idx] = entry
		case cacheLarge:
			c.large[idx] = entry
		}
	})
	if err != nil {
		return nil, nil, err
	}
	return c, needed, nil
}

// buildEntry resolves one tile's CubeArt into a cache Entry, allocating
// a texture-array slot per visible side.
func buildEntry(tile voxel.TileId, lookup Lookup, layout *texture.Layout) (Entry, []resource.ID, error) {
	art, ok := lookup.GetArtForTile(tile)
	if !ok {
		log.Printf("art: no art registered for tile %d, substituting missing texture", tile)
		return missingEntry, nil, nil
	}

	switch art.Kind {
	case Invisible:
		return Entry{VisibleThisPass: false}, nil, nil

	case Single:
		slot, err := layout.GetOrMakeIndex(art.Texture)
		if err != nil {
			return Entry{}, nil, fmt.Errorf("art: allocate slot for %s: %w", art.Texture, err)
		}
		entry := Entry{VisibleThisPass: true, CullSelf: art.CullSelf, CullOthers: art.CullOthers}
		for i := range entry.Slots {
			entry.Slots[i] = slot
		}
		return entry, []resource.ID{art.Texture}, nil

	default: // PerSide
		entry := Entry{VisibleThisPass: true, CullSelf: art.CullSelf, CullOthers: art.CullOthers}
		refs := make([]resource.ID, 0, voxel.NumSides)
		for i, rid := range art.Textures {
			slot, err := layout.GetOrMakeIndex(rid)
			if err != nil {
				return Entry{}, nil, fmt.Errorf("art: allocate slot for %s: %w", rid, err)
			}
			entry.Slots[i] = slot
			refs = append(refs, rid)
		}
		return entry, refs, nil
	}
}

// IsAnyVisible reports whether any entry in the cache is visible,
// letting the orchestrator skip all-air chunks before meshing.
func (c *Cache) IsAnyVisible() bool { return c.anyVisible }

// GetMapping returns the art entry for a raw palette index. In a Large
// cache, a raw index not present — which should only occur in a corrupt
// chunk — yields the missing-texture entry and ok=false, signalling a
// precondition violation to callers that want to treat it as fatal. A
// Small cache has a row for every index below 256 (unused rows hold the
// missing-texture entry and report ok=true), and a Uniform cache
// returns its single entry for any index.
func (c *Cache) GetMapping(rawIdx uint16) (entry Entry, ok bool) {
	switch c.mode {
	case cacheUniform:
		return c.uniform, true
	case cacheSmall:
		if int(rawIdx) >= len(c.small) {
			return missingEntry, false
		}
		return c.small[rawIdx], true
	default:
		e, found := c.large[rawIdx]
		if !found {
			return missingEntry, false
		}
		return e, true
	}
}
