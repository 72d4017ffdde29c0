// Command voxelsrv is a small demo entrypoint: it generates a
// synthetic world, meshes it through the C7/C8 pipeline, and either
// prints mesh statistics (headless) or drives a GLFW/OpenGL window via
// pkg/demoapp.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"runtime"

	"github.com/leterax/go-voxels/internal/openglhelper"
	"github.com/leterax/go-voxels/pkg/art"
	"github.com/leterax/go-voxels/pkg/demoapp"
	"github.com/leterax/go-voxels/pkg/loader"
	"github.com/leterax/go-voxels/pkg/mesh"
	"github.com/leterax/go-voxels/pkg/resource"
	"github.com/leterax/go-voxels/pkg/terrain"
	"github.com/leterax/go-voxels/pkg/voxel"
	"github.com/leterax/go-voxels/pkg/voxel/generator"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// stoneTexture is the sole resource this demo registers; a real game
// would resolve many more through an on-disk or packed asset table.
var stoneTexture = resource.FromBytes([]byte("demo-stone"))

// tileRegistry is the demo's art.Lookup: a fixed map from TileId to
// CubeArt, standing in for a game's real tile-definition table.
type tileRegistry struct {
	arts map[voxel.TileId]art.CubeArt
}

func newTileRegistry() *tileRegistry {
	return &tileRegistry{arts: map[voxel.TileId]art.CubeArt{
		generator.TileAir: {Kind: art.Invisible},
		generator.TileStone: {
			Kind:       art.Single,
			Texture:    stoneTexture,
			CullSelf:   true,
			CullOthers: true,
		},
	}}
}

func (r *tileRegistry) GetArtForTile(tile voxel.TileId) (art.CubeArt, bool) {
	a, ok := r.arts[tile]
	return a, ok
}

// solidColorImages is the demo's resource.ImageProvider: every
// resource id resolves to the same flat gray square. A real provider
// would decode actual asset bytes, possibly asynchronously.
type solidColorImages struct{}

func (solidColorImages) LoadImage(id resource.ID) resource.Status {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 160, G: 160, B: 160, A: 255})
		}
	}
	return resource.Status{Image: img}
}

func main() {
	headless := flag.Bool("headless", true, "run without opening a window, printing mesh statistics instead")
	renderDistance := flag.Int("render-distance", 2, "chunk render distance in each direction from the origin")
	groundHeight := flag.Int("ground", 15, "world-space Y of the synthetic terrain's surface")
	flag.Parse()

	space := voxel.NewSyncSpace()
	renderer := terrain.NewRenderer([2]uint32{16, 16}, 256)

	ld := loader.New(space, 64, func(cpos voxel.Pos) {
		renderer.NotifyChunkDirty(cpos)
	})
	defer ld.Close()

	rd := int32(*renderDistance)
	for x := -rd; x <= rd; x++ {
		for z := -rd; z <= rd; z++ {
			cpos := voxel.Pos{X: x, Y: 0, Z: z}
			gh := int32(*groundHeight)
			ld.Enqueue(loader.Job{
				CPos: cpos,
				Generate: func() *voxel.Chunk {
					return generator.Flat(cpos, gh)
				},
			})
		}
	}

	lookup := newTileRegistry()
	images := solidColorImages{}

	if *headless {
		runHeadless(space, renderer, lookup, images, rd)
		return
	}

	if err := runWindowed(space, renderer, lookup, images, rd); err != nil {
		log.Fatalf("voxelsrv: %v", err)
	}
}

// waitForChunks blocks until every chunk in [-rd,rd]^2 at y=0 is
// loaded. The demo loader processes jobs fast enough that this is a
// tight spin rather than a real wait; a production loader would expose
// a proper completion signal instead.
func waitForChunks(space *voxel.SyncSpace, rd int32) {
	for x := -rd; x <= rd; x++ {
		for z := -rd; z <= rd; z++ {
			cpos := voxel.Pos{X: x, Y: 0, Z: z}
			for !space.Loaded(cpos) {
				runtime.Gosched()
			}
		}
	}
}

func runHeadless(space *voxel.SyncSpace, renderer *terrain.Renderer, lookup art.Lookup, images resource.ImageProvider, rd int32) {
	waitForChunks(space, rd)

	if err := renderer.ProcessRemesh(space, lookup); err != nil {
		log.Fatalf("voxelsrv: process remesh: %v", err)
	}

	sink := &countingSink{}
	if err := renderer.PushToGPU(images, sink); err != nil {
		log.Fatalf("voxelsrv: push to gpu: %v", err)
	}

	fmt.Printf("meshed %d chunks, %d array textures, %d vertices uploaded\n",
		sink.attaches, sink.textureBuilds, sink.totalVertices)
}

func runWindowed(space *voxel.SyncSpace, renderer *terrain.Renderer, lookup art.Lookup, images resource.ImageProvider, rd int32) error {
	waitForChunks(space, rd)
	if err := renderer.ProcessRemesh(space, lookup); err != nil {
		return fmt.Errorf("process remesh: %w", err)
	}

	window, err := openglhelper.NewWindow(1280, 720, "voxelsrv", false)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer window.Close()

	shader, err := demoapp.DefaultShader()
	if err != nil {
		return fmt.Errorf("build shader: %w", err)
	}
	sink := demoapp.NewGLRendererSink(shader)
	defer sink.Cleanup()

	if err := renderer.PushToGPU(images, sink); err != nil {
		return fmt.Errorf("push to gpu: %w", err)
	}

	camera := demoapp.NewCamera(demoapp.DefaultCameraStart())
	camera.LookAtChunk(voxel.Pos{})
	log.Printf("voxelsrv: camera ready at chunk origin, %d chunks loaded", len(space.LoadedPositions()))

	lastFrame := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		deltaTime := float32(now - lastFrame)
		lastFrame = now

		window.PollEvents()
		camera.ProcessKeyboardInput(deltaTime, window)
		if window.GetKeyState(demoapp.KeyEscape) == demoapp.Press {
			window.GLFWWindow().SetShouldClose(true)
		}

		window.Clear(mgl32.Vec4{0.1, 0.1, 0.15, 1.0})
		sink.Draw(camera.ViewMatrix(), camera.ProjectionMatrix())
		window.SwapBuffers()
	}

	return nil
}

// countingSink is a RendererSink that does no GPU work, used by the
// headless path to report what would have been uploaded.
type countingSink struct {
	attaches      int
	textureBuilds int
	totalVertices int
}

func (s *countingSink) UploadMesh(vertices []mesh.PackedVertex) (terrain.MeshHandle, error) {
	s.totalVertices += len(vertices)
	return len(vertices), nil
}

func (s *countingSink) BuildArrayTexture(size [2]uint32, slotSources []image.Image) (terrain.TextureHandle, error) {
	s.textureBuilds++
	return s.textureBuilds, nil
}

func (s *countingSink) Attach(m terrain.MeshHandle, tex terrain.TextureHandle, translation voxel.Pos) (terrain.ObjectHandle, error) {
	s.attaches++
	return s.attaches, nil
}
