package voxel

// TileId is an opaque handle into a world-level tile registry. The
// registry itself (names, art, physical properties) lives outside this
// package; Chunk and TileSpace only ever move TileId values around.
type TileId uint16

// TileEmpty is the reserved "air" tile. A freshly constructed Chunk is
// Uniform(TileEmpty).
const TileEmpty TileId = 0
