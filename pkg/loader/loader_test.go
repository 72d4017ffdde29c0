package loader

import (
	"testing"
	"time"

	"github.com/leterax/go-voxels/pkg/voxel"
	"github.com/leterax/go-voxels/pkg/voxel/generator"
	"github.com/stretchr/testify/require"
)

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestLoaderIngestsEnqueuedChunk(t *testing.T) {
	space := voxel.NewSyncSpace()
	var loadedAt voxel.Pos
	var notified bool
	l := New(space, 4, func(cpos voxel.Pos) {
		loadedAt = cpos
		notified = true
	})
	defer l.Close()

	cpos := voxel.Pos{X: 3, Y: 0, Z: -2}
	l.Enqueue(Job{CPos: cpos, Generate: func() *voxel.Chunk {
		return generator.Flat(cpos, -100)
	}})

	waitUntil(t, func() bool { return space.Loaded(cpos) })
	require.True(t, notified)
	require.Equal(t, cpos, loadedAt)
}

func TestUnloadDistantRemovesFarChunks(t *testing.T) {
	space := voxel.NewSyncSpace()
	l := New(space, 4, nil)
	defer l.Close()

	near := voxel.Pos{X: 0, Y: 0, Z: 0}
	far := voxel.Pos{X: 10, Y: 0, Z: 0}
	space.IngestLoadedChunk(near, voxel.NewChunk(voxel.TileEmpty))
	space.IngestLoadedChunk(far, voxel.NewChunk(voxel.TileEmpty))

	unloaded := l.UnloadDistant(voxel.Pos{}, 2)
	require.Equal(t, []voxel.Pos{far}, unloaded)
	require.True(t, space.Loaded(near))
	require.False(t, space.Loaded(far))
}
