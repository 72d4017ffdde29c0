// Package demoapp wires the voxel core to a window and GPU: a free-fly
// Camera (adapted from the teacher's render.Camera) and GLRendererSink,
// an implementation of terrain.RendererSink built on the teacher's
// openglhelper buffer/shader primitives.
//
// GLRendererSink trades the teacher's ChunkBufferManager triple-
// buffered, persistently-mapped, multi-draw-indirect design for one
// VBO+VAO per uploaded mesh and one draw call per attached object.
// The orchestrator's publish contract is "per tick, not per frame", so
// the fence-synchronized ring buffer that design exists for has no
// workload to earn its complexity here; a demo sink should stay
// simple enough to read in one sitting.
package demoapp

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/leterax/go-voxels/internal/openglhelper"
	"github.com/leterax/go-voxels/pkg/mesh"
	"github.com/leterax/go-voxels/pkg/terrain"
	"github.com/leterax/go-voxels/pkg/voxel"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// gpuMesh is one uploaded mesh's GPU-side resources.
type gpuMesh struct {
	vao         *openglhelper.VertexArrayObject
	vbo         *openglhelper.BufferObject
	vertexCount int32
}

// gpuTextureArray is one built array texture's GPU-side resources.
type gpuTextureArray struct {
	textureID uint32
	layers    int32
}

// gpuObject is one attached draw: a mesh bound to a texture array at a
// world translation.
type gpuObject struct {
	meshID      uuid.UUID
	textureID   uuid.UUID
	translation mgl32.Vec3
}

// GLRendererSink implements terrain.RendererSink. Handles minted here
// are opaque uuid.UUID values wrapped as terrain.MeshHandle etc.; the
// orchestrator never looks inside them.
type GLRendererSink struct {
	shader *openglhelper.Shader

	meshes   map[uuid.UUID]*gpuMesh
	textures map[uuid.UUID]*gpuTextureArray
	objects  map[uuid.UUID]*gpuObject
}

// NewGLRendererSink builds a sink using shader for drawing every
// attached object.
func NewGLRendererSink(shader *openglhelper.Shader) *GLRendererSink {
	return &GLRendererSink{
		shader:   shader,
		meshes:   make(map[uuid.UUID]*gpuMesh),
		textures: make(map[uuid.UUID]*gpuTextureArray),
		objects:  make(map[uuid.UUID]*gpuObject),
	}
}

// UploadMesh uploads a packed vertex buffer into a fresh VBO/VAO pair.
// The single vertex attribute is the packed uint32 itself; shaders
// unpack position/texSlot/UV bits on the GPU.
func (s *GLRendererSink) UploadMesh(vertices []mesh.PackedVertex) (terrain.MeshHandle, error) {
	if len(vertices)%6 != 0 {
		return nil, fmt.Errorf("demoapp: mesh vertex count %d is not a multiple of 6", len(vertices))
	}

	sizeBytes := len(vertices) * 4
	var dataPtr unsafe.Pointer
	if sizeBytes > 0 {
		dataPtr = unsafe.Pointer(&vertices[0])
	}
	vbo := openglhelper.NewBufferObject(gl.ARRAY_BUFFER, sizeBytes, dataPtr, openglhelper.StaticDraw)

	vao := openglhelper.NewVAO()
	vao.Bind()
	vbo.Bind()
	// The packed vertex is a single uint32 the shader unpacks itself;
	// it must reach the shader as an integer, so this bypasses the
	// helper's float-oriented SetVertexAttribPointer.
	gl.VertexAttribIPointer(0, 1, gl.UNSIGNED_INT, 4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	vao.Unbind()

	id := uuid.New()
	s.meshes[id] = &gpuMesh{vao: vao, vbo: vbo, vertexCount: int32(len(vertices))}
	return id, nil
}

// BuildArrayTexture allocates a GL_TEXTURE_2D_ARRAY sized size with
// len(slotSources) layers, uploading each non-nil source as an RGBA
// layer. Every call allocates a new texture, so a nil source (a slot
// whose image provider has not resolved it yet) leaves that layer's
// contents uninitialized.
func (s *GLRendererSink) BuildArrayTexture(size [2]uint32, slotSources []image.Image) (terrain.TextureHandle, error) {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texID)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	layers := int32(len(slotSources))
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, int32(size[0]), int32(size[1]), layers, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	for layer, src := range slotSources {
		if src == nil {
			continue
		}
		rgba := toRGBA(src, int(size[0]), int(size[1]))
		gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0, 0, 0, int32(layer), int32(size[0]), int32(size[1]), 1, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&rgba[0]))
	}
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	id := uuid.New()
	s.textures[id] = &gpuTextureArray{textureID: texID, layers: layers}
	return id, nil
}

// Attach records a draw: mesh rendered with tex's array texture bound,
// translated to translation in world space.
func (s *GLRendererSink) Attach(meshHandle terrain.MeshHandle, tex terrain.TextureHandle, translation voxel.Pos) (terrain.ObjectHandle, error) {
	meshID, ok := meshHandle.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("demoapp: mesh handle is not a uuid.UUID")
	}
	texID, ok := tex.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("demoapp: texture handle is not a uuid.UUID")
	}

	id := uuid.New()
	s.objects[id] = &gpuObject{
		meshID:    meshID,
		textureID: texID,
		translation: mgl32.Vec3{
			float32(translation.X), float32(translation.Y), float32(translation.Z),
		},
	}
	return id, nil
}

// Draw issues one draw call per attached object, binding its texture
// array and translation uniform before drawing its mesh.
func (s *GLRendererSink) Draw(view, projection mgl32.Mat4) {
	s.shader.Use()
	s.shader.SetMat4("view", view)
	s.shader.SetMat4("projection", projection)

	for _, obj := range s.objects {
		m, ok := s.meshes[obj.meshID]
		if !ok {
			continue
		}
		tex, ok := s.textures[obj.textureID]
		if !ok {
			continue
		}

		model := mgl32.Translate3D(obj.translation[0], obj.translation[1], obj.translation[2])
		s.shader.SetMat4("model", model)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D_ARRAY, tex.textureID)
		s.shader.SetInt("tex_array", 0)

		m.vao.Bind()
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
		m.vao.Unbind()
	}
}

// Cleanup releases every GPU resource the sink owns.
func (s *GLRendererSink) Cleanup() {
	for _, m := range s.meshes {
		m.vbo.Delete()
		m.vao.Delete()
	}
	for _, t := range s.textures {
		texID := t.textureID
		gl.DeleteTextures(1, &texID)
	}
}

func toRGBA(src image.Image, w, h int) []byte {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	bounds := src.Bounds()
	for y := 0; y < h && y < bounds.Dy(); y++ {
		for x := 0; x < w && x < bounds.Dx(); x++ {
			dst.Set(x, y, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return dst.Pix
}
