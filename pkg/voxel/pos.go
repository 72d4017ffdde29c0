package voxel

// Pos is an integer (x,y,z) position. It is used both for chunk
// coordinates (one Pos per loaded Chunk) and for block-space world
// positions (Pos scaled by ChunkSize plus a local offset).
type Pos struct {
	X, Y, Z int32
}

// Add returns the component-wise sum of p and o.
func (p Pos) Add(o Pos) Pos {
	return Pos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns the component-wise difference p - o.
func (p Pos) Sub(o Pos) Pos {
	return Pos{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Neighbor returns the position adjacent to p on the given side.
func (p Pos) Neighbor(side Side) Pos {
	return p.Add(side.Offset())
}

// Axis identifies one of the three coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Coord returns the component of p along axis.
func (p Pos) Coord(axis Axis) int32 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// SetCoord returns p with the component along axis replaced by v.
func (p Pos) SetCoord(axis Axis, v int32) Pos {
	switch axis {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

// Side is one of the six faces of a cube. The zero value is PosX, and
// iteration over [0,6) via Side(i) visits sides in the canonical order
// +X,-X,+Y,-Y,+Z,-Z — the order the mesher's face-enumeration and
// per-side offset helpers both depend on.
type Side uint8

const (
	PosX Side = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
	numSides = 6
)

// Sides lists all six sides in their canonical stable order.
var Sides = [numSides]Side{PosX, NegX, PosY, NegY, PosZ, NegZ}

// Index returns the side's stable index in [0,6).
func (s Side) Index() int {
	return int(s)
}

// Opposite returns the side facing the opposite direction.
func (s Side) Opposite() Side {
	switch s {
	case PosX:
		return NegX
	case NegX:
		return PosX
	case PosY:
		return NegY
	case NegY:
		return PosY
	case PosZ:
		return NegZ
	default:
		return PosZ
	}
}

// Axis returns the axis this side lies along.
func (s Side) Axis() Axis {
	switch s {
	case PosX, NegX:
		return AxisX
	case PosY, NegY:
		return AxisY
	default:
		return AxisZ
	}
}

// Offset returns the unit Pos delta this side points toward.
func (s Side) Offset() Pos {
	switch s {
	case PosX:
		return Pos{1, 0, 0}
	case NegX:
		return Pos{-1, 0, 0}
	case PosY:
		return Pos{0, 1, 0}
	case NegY:
		return Pos{0, -1, 0}
	case PosZ:
		return Pos{0, 0, 1}
	default:
		return Pos{0, 0, -1}
	}
}

func (s Side) String() string {
	switch s {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosY:
		return "+Y"
	case NegY:
		return "-Y"
	case PosZ:
		return "+Z"
	default:
		return "-Z"
	}
}

// NumSides is the width of a SidesArray: a plain [NumSides]T array
// indexed by Side.Index(), used wherever the spec calls for a
// fixed-six-element-per-side table (texture slots, per-side art).
const NumSides = numSides

// Range is an axis-aligned cuboid: inclusive on Min, exclusive on Max.
type Range struct {
	Min, Max Pos
}

// Contains reports whether p lies within the range.
func (r Range) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y &&
		p.Z >= r.Min.Z && p.Z < r.Max.Z
}

// Volume returns the number of positions in the range, or 0 if empty.
func (r Range) Volume() int64 {
	dx := int64(r.Max.X - r.Min.X)
	dy := int64(r.Max.Y - r.Min.Y)
	dz := int64(r.Max.Z - r.Min.Z)
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return 0
	}
	return dx * dy * dz
}

// ForEach visits every position in the range in ascending x-fastest,
// then y, then z order, stopping early if visit returns false.
func (r Range) ForEach(visit func(Pos) bool) {
	for z := r.Min.Z; z < r.Max.Z; z++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !visit(Pos{x, y, z}) {
					return
				}
			}
		}
	}
}
