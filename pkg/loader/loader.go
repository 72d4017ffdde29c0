// Package loader is a background chunk-loading worker: callers enqueue
// chunk coordinates with a generation function, a single goroutine
// builds each chunk off the hot path and ingests it into a
// voxel.SyncSpace, and distant chunks can be swept away on demand.
//
// This mirrors the teacher's ChunkManager worker-goroutine/channel
// idiom, repurposed from network-delivered chunks to any chunk source
// (network, disk, or procedural) behind a single Generate callback.
package loader

import (
	"sync"

	"github.com/leterax/go-voxels/pkg/voxel"
)

// Job is one unit of loading work: build the chunk at CPos by calling
// Generate off the caller's goroutine.
type Job struct {
	CPos     voxel.Pos
	Generate func() *voxel.Chunk
}

// Loader runs a single worker goroutine pulling Jobs off a buffered
// channel and ingesting the results into Space. OnLoaded, if set, is
// called after each chunk is ingested so a collaborator (typically a
// terrain.Renderer) can mark it dirty for meshing.
type Loader struct {
	space *voxel.SyncSpace

	queue         chan Job
	stopWorker    chan struct{}
	workerStopped chan struct{}

	onLoaded func(voxel.Pos)

	loadedMutex sync.Mutex
	everLoaded  bool
}

// New starts a Loader's background worker. queueDepth bounds how many
// pending jobs may be buffered before Enqueue blocks.
func New(space *voxel.SyncSpace, queueDepth int, onLoaded func(voxel.Pos)) *Loader {
	l := &Loader{
		space:         space,
		queue:         make(chan Job, queueDepth),
		stopWorker:    make(chan struct{}),
		workerStopped: make(chan struct{}),
		onLoaded:      onLoaded,
	}
	go l.worker()
	return l
}

// Enqueue schedules cpos to be generated and ingested. It blocks if the
// queue is full.
func (l *Loader) Enqueue(job Job) {
	l.queue <- job
}

func (l *Loader) worker() {
	defer close(l.workerStopped)
	for {
		select {
		case <-l.stopWorker:
			return
		case job := <-l.queue:
			chunk := job.Generate()
			l.space.IngestLoadedChunk(job.CPos, chunk)
			l.loadedMutex.Lock()
			l.everLoaded = true
			l.loadedMutex.Unlock()
			if l.onLoaded != nil {
				l.onLoaded(job.CPos)
			}
		}
	}
}

// Close stops the worker goroutine and waits for it to exit. Jobs
// still queued when Close is called may be dropped unprocessed: the
// worker's select can take the stop signal before any of them.
func (l *Loader) Close() {
	close(l.stopWorker)
	<-l.workerStopped
}

// UnloadDistant drops every chunk whose coordinate is farther than
// renderDistance chunks (Chebyshev distance) from center, returning the
// coordinates it unloaded.
func (l *Loader) UnloadDistant(center voxel.Pos, renderDistance int32) []voxel.Pos {
	var unloaded []voxel.Pos
	for _, cpos := range l.space.LoadedPositions() {
		dx := abs32(cpos.X - center.X)
		dy := abs32(cpos.Y - center.Y)
		dz := abs32(cpos.Z - center.Z)
		if dx > renderDistance || dy > renderDistance || dz > renderDistance {
			l.space.Unload(cpos)
			unloaded = append(unloaded, cpos)
		}
	}
	return unloaded
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
