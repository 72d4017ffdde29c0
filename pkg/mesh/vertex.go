// Package mesh turns a Chunk plus its resolved ArtCache into a flat,
// GPU-ready vertex buffer: one quad (six vertices, two triangles) per
// visible, uncovered cube face.
package mesh

// PackedVertex is a single 32-bit-packed mesh vertex: a cell-local
// position, the texture-array slot to sample, and which corner of the
// unit quad this vertex occupies (encoded as a pair of UV high bits,
// since every face uses the same four corners of its texture).
//
// Bit layout, low to high: x:6 y:6 z:6 tex_slot:12 u_high:1 v_high:1.
type PackedVertex uint32

const (
	xBits       = 6
	yBits       = 6
	zBits       = 6
	texSlotBits = 12

	xShift       = 0
	yShift       = xShift + xBits
	zShift       = yShift + yBits
	texSlotShift = zShift + zBits
	uShift       = texSlotShift + texSlotBits
	vShift       = uShift + 1

	xMask       = (1 << xBits) - 1
	yMask       = (1 << yBits) - 1
	zMask       = (1 << zBits) - 1
	texSlotMask = (1 << texSlotBits) - 1
)

// PackVertex encodes a cell-local corner position, a texture-array
// slot, and the quad corner's UV high bits into a single uint32.
func PackVertex(x, y, z uint8, texSlot uint32, uHigh, vHigh bool) PackedVertex {
	v := uint32(x&xMask)<<xShift |
		uint32(y&yMask)<<yShift |
		uint32(z&zMask)<<zShift |
		(texSlot&texSlotMask)<<texSlotShift
	if uHigh {
		v |= 1 << uShift
	}
	if vHigh {
		v |= 1 << vShift
	}
	return PackedVertex(v)
}

// Unpack decodes a PackedVertex back into its fields, used by tests to
// assert the packer round-trips rather than re-deriving the bit math.
func (v PackedVertex) Unpack() (x, y, z uint8, texSlot uint32, uHigh, vHigh bool) {
	x = uint8(v>>xShift) & xMask
	y = uint8(v>>yShift) & yMask
	z = uint8(v>>zShift) & zMask
	texSlot = (uint32(v) >> texSlotShift) & texSlotMask
	uHigh = (uint32(v)>>uShift)&1 != 0
	vHigh = (uint32(v)>>vShift)&1 != 0
	return
}

// ChunkMesh is the flat vertex buffer produced by Build. Len(Vertices)
// is always a multiple of 6 (two triangles per emitted face).
type ChunkMesh struct {
	Vertices []PackedVertex
}

// Empty reports whether the mesh has no geometry at all.
func (m ChunkMesh) Empty() bool { return len(m.Vertices) == 0 }
