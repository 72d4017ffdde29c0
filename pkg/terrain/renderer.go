// Package terrain implements the orchestrator that sits between the
// voxel core and a renderer: it tracks which chunks need remeshing,
// drives the mesher into a chosen texture layout, and publishes the
// resulting geometry to a renderer collaborator strictly after that
// layout's array texture has been rebuilt.
package terrain

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/leterax/go-voxels/pkg/art"
	"github.com/leterax/go-voxels/pkg/mesh"
	"github.com/leterax/go-voxels/pkg/resource"
	"github.com/leterax/go-voxels/pkg/texture"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// ChunkSource is the read access the orchestrator needs into the chunk
// store. Both voxel.Space and voxel.SyncSpace satisfy it.
type ChunkSource interface {
	BorrowChunk(cpos voxel.Pos) *voxel.Chunk
}

// MeshHandle, TextureHandle and ObjectHandle are opaque identifiers
// minted by a RendererSink; the orchestrator never inspects them.
type MeshHandle any
type TextureHandle any
type ObjectHandle any

// RendererSink is the collaborator interface a concrete renderer
// implements. The orchestrator calls it only from ProcessRemesh and
// PushToGPU, never concurrently with itself.
type RendererSink interface {
	UploadMesh(vertices []mesh.PackedVertex) (MeshHandle, error)
	BuildArrayTexture(size [2]uint32, slotSources []image.Image) (TextureHandle, error)
	Attach(mesh MeshHandle, tex TextureHandle, translation voxel.Pos) (ObjectHandle, error)
}

// binding records which texture layout a chunk's mesh was built
// against, and the layout revision the renderer last saw.
type binding struct {
	layoutID     uint32
	seenRevision uint64
}

// halfFull is the reuse-vs-allocate threshold the binding policy uses
// when assigning a chunk to a texture layout.
const halfFull = 0.5

// Renderer is the C8 orchestrator: the only component that mutates the
// texture-layout allocator, and the sole synchronization point between
// meshing and GPU state. It is single-threaded cooperative — every
// method here is expected to be called from one task in sequence.
type Renderer struct {
	pendingRemesh map[voxel.Pos]struct{}
	meshed        map[voxel.Pos]mesh.ChunkMesh
	published     map[voxel.Pos]ObjectHandle
	binding       map[voxel.Pos]binding

	layouts      map[uint32]*texture.Layout
	textureHandles map[uint32]TextureHandle
	nextLayoutID uint32

	textureSize   [2]uint32
	maxSlotsPerLayout uint32
}

// NewRenderer constructs an empty orchestrator. textureSize and
// maxSlotsPerLayout are used whenever a fresh ArrayTextureLayout must
// be allocated.
func NewRenderer(textureSize [2]uint32, maxSlotsPerLayout uint32) *Renderer {
	return &Renderer{
		pendingRemesh:  make(map[voxel.Pos]struct{}),
		meshed:         make(map[voxel.Pos]mesh.ChunkMesh),
		published:      make(map[voxel.Pos]ObjectHandle),
		binding:        make(map[voxel.Pos]binding),
		layouts:        make(map[uint32]*texture.Layout),
		textureHandles: make(map[uint32]TextureHandle),
		textureSize:       textureSize,
		maxSlotsPerLayout: maxSlotsPerLayout,
	}
}

// NotifyTileChanged flags the chunk containing blockPos for remeshing.
func (r *Renderer) NotifyTileChanged(blockPos voxel.Pos) {
	cpos, _ := voxel.WorldToChunkPos(blockPos)
	r.pendingRemesh[cpos] = struct{}{}
}

// NotifyChunkDirty flags cpos directly, e.g. after a bulk load.
func (r *Renderer) NotifyChunkDirty(cpos voxel.Pos) {
	r.pendingRemesh[cpos] = struct{}{}
}

// NotifyUnloaded purges every piece of per-chunk state the orchestrator
// holds for cpos.
func (r *Renderer) NotifyUnloaded(cpos voxel.Pos) {
	delete(r.pendingRemesh, cpos)
	delete(r.meshed, cpos)
	delete(r.published, cpos)
	delete(r.binding, cpos)
}

// ProcessRemesh drains pendingRemesh, meshing each chunk into a
// texture layout selected by a reuse-below-half-full-else-allocate
// policy. A chunk whose mesh comes back empty updates no state besides
// being removed from pendingRemesh (it is not "meshed" or bound).
//
// Texture-slot exhaustion (texture.ErrAddOverMax) never aborts the
// batch: it is recovered per-chunk by allocating a fresh layout and
// retrying, so a full layout costs one extra allocation rather than
// silently dropping every chunk still left in pending. An error that
// the retry does not resolve does not stop the other chunks either; the
// first such error is returned once the whole batch has been processed.
func (r *Renderer) ProcessRemesh(space ChunkSource, lookup art.Lookup) error {
	pending := r.pendingRemesh
	r.pendingRemesh = make(map[voxel.Pos]struct{})

	var firstErr error
	for cpos := range pending {
		chunk := space.BorrowChunk(cpos)
		if chunk == nil {
			continue
		}

		layoutID, layout := r.selectLayout(cpos)
		m, _, err := mesh.Build(chunk, lookup, layout)
		if err != nil {
			var overMax *texture.ErrAddOverMax
			if errors.As(err, &overMax) {
				log.Printf("terrain: layout %d exhausted (%d slots) meshing chunk %v, allocating a fresh layout", layoutID, overMax.MaxSlots, cpos)
				layoutID, layout = r.allocateLayout()
				m, _, err = mesh.Build(chunk, lookup, layout)
			}
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("terrain: mesh chunk %v: %w", cpos, err)
				}
				continue
			}
		}
		if m.Empty() {
			continue
		}

		r.meshed[cpos] = m
		var seen uint64
		if prev, ok := r.binding[cpos]; ok && prev.layoutID == layoutID {
			seen = prev.seenRevision
		}
		r.binding[cpos] = binding{layoutID: layoutID, seenRevision: seen}
	}
	return firstErr
}

// selectLayout returns an existing binding's layout if cpos already
// has one, otherwise applies the reuse-below-half-full-else-allocate
// policy.
func (r *Renderer) selectLayout(cpos voxel.Pos) (uint32, *texture.Layout) {
	if b, ok := r.binding[cpos]; ok {
		return b.layoutID, r.layouts[b.layoutID]
	}
	for id, layout := range r.layouts {
		if float64(layout.TextureCount()) < float64(layout.MaxSlots())*halfFull {
			return id, layout
		}
	}
	return r.allocateLayout()
}

// allocateLayout always mints a brand new, empty layout, bypassing the
// reuse policy. Used both by selectLayout when no layout has room, and
// by ProcessRemesh's exhaustion-recovery path, where an existing
// layout has just proven itself full.
func (r *Renderer) allocateLayout() (uint32, *texture.Layout) {
	id := r.nextLayoutID
	r.nextLayoutID++
	layout := texture.NewLayout(r.textureSize, r.maxSlotsPerLayout)
	r.layouts[id] = layout
	return id, layout
}

// PushToGPU rebuilds the array texture for every layout whose revision
// has advanced since it was last observed, strictly before publishing
// any mesh that might reference the new slots, then uploads and
// attaches every pending mesh.
func (r *Renderer) PushToGPU(images resource.ImageProvider, sink RendererSink) error {
	if err := r.rebuildStaleTextures(images, sink); err != nil {
		return err
	}
	return r.publishMeshes(sink)
}

func (r *Renderer) rebuildStaleTextures(images resource.ImageProvider, sink RendererSink) error {
	staleLayouts := make(map[uint32]struct{})
	for cpos, b := range r.binding {
		layout := r.layouts[b.layoutID]
		if layout == nil {
			continue
		}
		if b.seenRevision < layout.Revision() {
			staleLayouts[b.layoutID] = struct{}{}
		}
		_ = cpos
	}

	for id := range staleLayouts {
		layout := r.layouts[id]
		slots := layout.Textures()
		sources := make([]image.Image, len(slots))
		for i, rid := range slots {
			status := images.LoadImage(rid)
			if status.Pending || status.Image == nil {
				continue
			}
			sources[i] = status.Image
		}
		w, h := layout.TextureSize()
		handle, err := sink.BuildArrayTexture([2]uint32{w, h}, sources)
		if err != nil {
			return fmt.Errorf("terrain: build array texture for layout %d: %w", id, err)
		}
		r.textureHandles[id] = handle
		rev := layout.Revision()
		for cpos, b := range r.binding {
			if b.layoutID == id {
				r.binding[cpos] = binding{layoutID: id, seenRevision: rev}
			}
		}
	}
	return nil
}

func (r *Renderer) publishMeshes(sink RendererSink) error {
	for cpos, m := range r.meshed {
		b, ok := r.binding[cpos]
		if !ok {
			continue
		}
		texHandle := r.textureHandles[b.layoutID]
		meshHandle, err := sink.UploadMesh(m.Vertices)
		if err != nil {
			return fmt.Errorf("terrain: upload mesh for %v: %w", cpos, err)
		}
		translation := voxel.ChunkToWorldPos(cpos)
		handle, err := sink.Attach(meshHandle, texHandle, translation)
		if err != nil {
			return fmt.Errorf("terrain: attach mesh for %v: %w", cpos, err)
		}
		r.published[cpos] = handle
		delete(r.meshed, cpos)
	}
	return nil
}

// Published returns the object handle published for cpos, if any.
func (r *Renderer) Published(cpos voxel.Pos) (ObjectHandle, bool) {
	h, ok := r.published[cpos]
	return h, ok
}
