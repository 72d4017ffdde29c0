package mesh

import "github.com/leterax/go-voxels/pkg/voxel"

// corner is one unit-cube corner offset, each coordinate 0 or 1.
type corner struct{ x, y, z uint8 }

var (
	posXposYposZ = corner{1, 1, 1}
	posXposYnegZ = corner{1, 1, 0}
	posXnegYnegZ = corner{1, 0, 0}
	posXnegYposZ = corner{1, 0, 1}
	negXposYnegZ = corner{0, 1, 0}
	negXposYposZ = corner{0, 1, 1}
	negXnegYposZ = corner{0, 0, 1}
	negXnegYnegZ = corner{0, 0, 0}
)

// faceTemplates holds, for each Side in its canonical Index() order, the
// six corner offsets of that face's two triangles. Winding and corner
// choice are reproduced exactly from the reference mesher; this package
// does not re-derive them.
var faceTemplates = [voxel.NumSides][6]corner{
	voxel.PosX.Index(): {posXposYnegZ, posXposYposZ, posXnegYposZ, posXnegYposZ, posXnegYnegZ, posXposYnegZ},
	voxel.NegX.Index(): {negXposYposZ, negXposYnegZ, negXnegYnegZ, negXnegYnegZ, negXnegYposZ, negXposYposZ},
	voxel.PosY.Index(): {negXposYnegZ, negXposYposZ, posXposYposZ, posXposYposZ, posXposYnegZ, negXposYnegZ},
	voxel.NegY.Index(): {posXnegYnegZ, posXnegYposZ, negXnegYposZ, negXnegYposZ, negXnegYnegZ, posXnegYnegZ},
	voxel.PosZ.Index(): {posXposYposZ, negXposYposZ, negXnegYposZ, negXnegYposZ, posXnegYposZ, posXposYposZ},
	voxel.NegZ.Index(): {negXposYnegZ, posXposYnegZ, posXnegYnegZ, posXnegYnegZ, negXnegYnegZ, negXposYnegZ},
}

// faceUV gives the (uHigh, vHigh) pair for each of the six
// vertex-within-face positions, the same for every face: positions 2
// and 3 sit at (0,1), 0 and 5 at (1,0), 1 at (0,0), 4 at (1,1).
var faceUV = [6][2]bool{
	{true, false},  // 0
	{false, false}, // 1
	{false, true},  // 2
	{false, true},  // 3
	{true, true},   // 4
	{true, false},  // 5
}
