// Package texture implements ArrayTextureLayout, the dynamic slot
// allocator that assigns array-texture layer indices to ResourceIds on
// demand, tracking an ordered change log so a renderer collaborator
// can apply incremental updates instead of rebuilding from scratch.
package texture

import (
	"fmt"

	"github.com/leterax/go-voxels/pkg/resource"
)

// Reserved slots: every Layout begins with the "missing" and "pending"
// sentinel textures pre-installed, so art lookups that fail or are
// still loading always have a valid slot to point at.
const (
	SlotMissing uint32 = 0
	SlotPending uint32 = 1
)

// ChangeKind tags which variant a Change record holds.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeEndRemove
	ChangeSwapRemove
)

// Change is one entry in a Layout's ordered log of slot mutations
// since the last drain. Consumers must apply swap-removes before
// adds, and in log order.
type Change struct {
	Kind ChangeKind

	// valid when Kind == ChangeAdded
	Slot         uint32
	AddedResource resource.ID

	// valid when Kind == ChangeEndRemove
	RemovedSlot     uint32
	RemovedResource resource.ID

	// valid when Kind == ChangeSwapRemove
	SwapRemovedSlot      uint32
	SwapSourceSlot       uint32
	SwapRemovedResource  resource.ID
	SwapSwappedInResource resource.ID
}

// ErrAddOverMax is returned by GetOrMakeIndex when the layout is
// already at its configured slot capacity.
type ErrAddOverMax struct {
	Resource resource.ID
	MaxSlots uint32
}

func (e *ErrAddOverMax) Error() string {
	return fmt.Sprintf("texture: cannot add %s, layout is at its maximum of %d slots", e.Resource, e.MaxSlots)
}

// Layout is an ordered vector of ResourceId slots plus the reverse
// lookup needed to make GetOrMakeIndex idempotent.
type Layout struct {
	textures     []resource.ID
	reverseIndex map[resource.ID]uint32
	textureSize  [2]uint32
	maxSlots     uint32
	revision     uint64
	changes      []Change
}

// NewLayout constructs a Layout for textureSize-pixel textures,
// pre-populating the two reserved sentinel slots. maxSlots is clamped
// to at least 2.
func NewLayout(textureSize [2]uint32, maxSlots uint32) *Layout {
	if maxSlots < 2 {
		maxSlots = 2
	}
	l := &Layout{
		textures:     []resource.ID{resource.Missing, resource.Pending},
		reverseIndex: make(map[resource.ID]uint32, maxSlots),
		textureSize:  textureSize,
		maxSlots:     maxSlots,
	}
	l.reverseIndex[resource.Missing] = SlotMissing
	l.reverseIndex[resource.Pending] = SlotPending
	return l
}

// IndexOf is a pure lookup: the slot rid currently occupies, if any.
func (l *Layout) IndexOf(rid resource.ID) (uint32, bool) {
	idx, ok := l.reverseIndex[rid]
	return idx, ok
}

// GetOrMakeIndex returns rid's existing slot, or allocates a new one
// at the end of the table and records a Change if rid is not yet
// present. Fails once the layout is at MaxSlots.
func (l *Layout) GetOrMakeIndex(rid resource.ID) (uint32, error) {
	if idx, ok := l.reverseIndex[rid]; ok {
		return idx, nil
	}
	idx := uint32(len(l.textures))
	if idx >= l.maxSlots {
		return 0, &ErrAddOverMax{Resource: rid, MaxSlots: l.maxSlots}
	}
	l.textures = append(l.textures, rid)
	l.reverseIndex[rid] = idx
	l.revision++
	l.changes = append(l.changes, Change{Kind: ChangeAdded, Slot: idx, AddedResource: rid})
	return idx, nil
}

// Unload removes rid from the layout, if present. A slot at the end
// is simply dropped (EndRemove); a slot in the middle is filled by
// swapping the last slot into its place (SwapRemove), matching the
// O(1)-removal contract the renderer depends on.
func (l *Layout) Unload(rid resource.ID) {
	idx, ok := l.reverseIndex[rid]
	if !ok {
		return
	}
	lastIdx := uint32(len(l.textures) - 1)
	delete(l.reverseIndex, rid)
	if idx == lastIdx {
		l.textures = l.textures[:lastIdx]
		l.revision++
		l.changes = append(l.changes, Change{Kind: ChangeEndRemove, RemovedSlot: idx, RemovedResource: rid})
		return
	}
	swappedIn := l.textures[lastIdx]
	l.textures[idx] = swappedIn
	l.textures = l.textures[:lastIdx]
	l.reverseIndex[swappedIn] = idx
	l.revision++
	l.changes = append(l.changes, Change{
		Kind:                  ChangeSwapRemove,
		SwapRemovedSlot:       idx,
		SwapSourceSlot:        lastIdx,
		SwapRemovedResource:   rid,
		SwapSwappedInResource: swappedIn,
	})
}

// DrainChanges atomically hands out and clears the change log.
func (l *Layout) DrainChanges() []Change {
	out := l.changes
	l.changes = nil
	return out
}

// Revision returns how many times the layout has changed.
func (l *Layout) Revision() uint64 { return l.revision }

// TextureCount returns the current number of occupied slots.
func (l *Layout) TextureCount() int { return len(l.textures) }

// MaxSlots returns the layout's configured capacity.
func (l *Layout) MaxSlots() uint32 { return l.maxSlots }

// TextureSize returns the pixel dimensions every slot's texture must
// match.
func (l *Layout) TextureSize() (uint32, uint32) { return l.textureSize[0], l.textureSize[1] }

// Textures returns the slot table in slot order. Callers must not
// mutate the returned slice.
func (l *Layout) Textures() []resource.ID { return l.textures }
