package voxel

// ChunkSize is the fixed side length S of every Chunk in this build.
// The spec requires this be configured at compile time and held
// constant across a build; 32 matches the teacher's existing chunk
// size and the upper option the spec allows (16 or 32).
const ChunkSize = 32

// chunkVolume is S^3, the number of cells in a chunk.
const chunkVolume = ChunkSize * ChunkSize * ChunkSize

// xyzToIndex computes the canonical flat index i = z*S^2 + y*S + x for
// a position known to lie in [0,S)^3. XYZToIndex and IndexToXYZ below
// export it and its inverse for collaborators that walk a chunk by raw
// index or flat wire order.
func xyzToIndex(x, y, z int) int {
	return z*ChunkSize*ChunkSize + y*ChunkSize + x
}

// indexToXYZ is the inverse of xyzToIndex.
func indexToXYZ(i int) (x, y, z int) {
	z = i / (ChunkSize * ChunkSize)
	rem := i % (ChunkSize * ChunkSize)
	y = rem / ChunkSize
	x = rem % ChunkSize
	return
}

// IndexToXYZ is the exported inverse of the canonical flat index,
// usable by collaborators (the mesher) that walk a chunk by raw index.
func IndexToXYZ(i int) (x, y, z int) { return indexToXYZ(i) }

// XYZToIndex is the exported canonical flat index function.
func XYZToIndex(x, y, z int) int { return xyzToIndex(x, y, z) }

// NeighborIndex is the exported per-side offset helper described by
// the spec as "the sole mechanism the mesher uses to detect chunk
// edges": it returns the neighboring cell's flat index and whether
// that neighbor lies inside the chunk.
func NeighborIndex(i int, side Side) (int, bool) { return neighborIndex(i, side) }

// neighborIndex returns the flat index of the cell adjacent to the
// cell at local index i on the given side, and whether that neighbor
// lies inside the chunk. This is the sole mechanism the mesher uses to
// detect chunk edges: a false return means the face is a chunk
// boundary face, not that the neighbor is absent.
func neighborIndex(i int, side Side) (int, bool) {
	x, y, z := indexToXYZ(i)
	switch side {
	case PosX:
		if x+1 >= ChunkSize {
			return 0, false
		}
		return xyzToIndex(x+1, y, z), true
	case NegX:
		if x-1 < 0 {
			return 0, false
		}
		return xyzToIndex(x-1, y, z), true
	case PosY:
		if y+1 >= ChunkSize {
			return 0, false
		}
		return xyzToIndex(x, y+1, z), true
	case NegY:
		if y-1 < 0 {
			return 0, false
		}
		return xyzToIndex(x, y-1, z), true
	case PosZ:
		if z+1 >= ChunkSize {
			return 0, false
		}
		return xyzToIndex(x, y, z+1), true
	default: // NegZ
		if z-1 < 0 {
			return 0, false
		}
		return xyzToIndex(x, y, z-1), true
	}
}
