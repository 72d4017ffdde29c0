package voxel

import "testing"

func TestUniformChunkDefault(t *testing.T) {
	c := NewChunk(TileEmpty)
	if !c.IsUniform() {
		t.Fatalf("fresh chunk should be uniform")
	}
	if got := c.Get(0, 0, 0); got != TileEmpty {
		t.Errorf("Get(0,0,0) = %v, want %v", got, TileEmpty)
	}
	if c.Revision() != 0 {
		t.Errorf("fresh chunk revision = %d, want 0", c.Revision())
	}
}

func TestSetThenGetRoundTrip(t *testing.T) {
	c := NewChunk(TileEmpty)
	c.Set(1, 2, 3, TileId(42))
	if got := c.Get(1, 2, 3); got != 42 {
		t.Errorf("Get(1,2,3) = %v, want 42", got)
	}
}

func TestSetSameValueNoPromotionNoRevision(t *testing.T) {
	c := NewChunk(TileEmpty)
	c.Set(0, 0, 0, TileEmpty)
	if !c.IsUniform() {
		t.Errorf("setting the existing uniform value should not promote")
	}
	if c.Revision() != 0 {
		t.Errorf("revision = %d, want 0 (no change)", c.Revision())
	}
}

func TestSetDifferentValuePromotesToSmall(t *testing.T) {
	c := NewChunk(TileEmpty)
	c.Set(5, 5, 5, TileId(7))
	if !c.IsSmall() {
		t.Fatalf("chunk mode = %s, want small", c.Mode())
	}
	if c.Revision() != 1 {
		t.Errorf("revision = %d, want 1", c.Revision())
	}
	if got := c.Get(5, 5, 5); got != 7 {
		t.Errorf("Get = %v, want 7", got)
	}
	// every other cell still reads the original uniform value
	if got := c.Get(0, 0, 0); got != TileEmpty {
		t.Errorf("Get(0,0,0) = %v, want unchanged default", got)
	}
}

func TestRevisionCountsOnlyActualChanges(t *testing.T) {
	c := NewChunk(TileEmpty)
	for i := 0; i < 5; i++ {
		c.Set(1, 1, 1, TileId(9)) // first changes, rest are no-ops
	}
	if c.Revision() != 1 {
		t.Errorf("revision = %d, want 1", c.Revision())
	}
}

func TestPromotionToLargeAt256DistinctTiles(t *testing.T) {
	c := NewChunk(TileEmpty)
	positions := make([][3]int, 0, 256)
	for i := 0; i < 256; i++ {
		positions = append(positions, [3]int{i % ChunkSize, (i / ChunkSize) % ChunkSize, i / (ChunkSize * ChunkSize)})
	}
	for i, p := range positions {
		c.Set(p[0], p[1], p[2], TileId(i+1))
		if i == 0 && !c.IsSmall() {
			t.Fatalf("after first distinct set, chunk should be small, got %s", c.Mode())
		}
	}
	if !c.IsLarge() {
		t.Fatalf("after 256 distinct sets, chunk should be large, got %s", c.Mode())
	}
	for i, p := range positions {
		if got := c.Get(p[0], p[1], p[2]); got != TileId(i+1) {
			t.Errorf("position %d: Get = %v, want %v", i, got, i+1)
		}
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	c := NewChunk(TileEmpty)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range position")
		}
	}()
	c.Get(-1, 0, 0)
}

func TestGetRawUniformIsZero(t *testing.T) {
	c := NewChunk(TileId(3))
	if c.GetRaw(0) != 0 {
		t.Errorf("GetRaw on uniform chunk should be 0")
	}
}

func TestPaletteDirtyFlag(t *testing.T) {
	c := NewChunk(TileEmpty)
	if c.PaletteDirty() {
		t.Fatalf("fresh chunk should not be palette-dirty")
	}
	c.Set(0, 0, 0, TileId(1))
	if !c.ConsumePaletteDirty() {
		t.Errorf("expected palette-dirty after first distinct set")
	}
	if c.PaletteDirty() {
		t.Errorf("ConsumePaletteDirty should clear the flag")
	}
}
