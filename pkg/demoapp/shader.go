package demoapp

import (
	"github.com/leterax/go-voxels/internal/openglhelper"
	"github.com/go-gl/mathgl/mgl32"
)

// defaultVertexShader unpacks a PackedVertex's bit fields on the GPU:
// x:6 y:6 z:6 tex_slot:12 u_high:1 v_high:1, matching pkg/mesh's layout.
const defaultVertexShader = `
#version 460 core
layout (location = 0) in uint packedVertex;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 uv;
flat out int texSlot;

void main() {
    uint x = packedVertex & 0x3Fu;
    uint y = (packedVertex >> 6) & 0x3Fu;
    uint z = (packedVertex >> 12) & 0x3Fu;
    uint slot = (packedVertex >> 18) & 0xFFFu;
    uint uHigh = (packedVertex >> 30) & 0x1u;
    uint vHigh = (packedVertex >> 31) & 0x1u;

    vec3 localPos = vec3(float(x), float(y), float(z));
    gl_Position = projection * view * model * vec4(localPos, 1.0);
    uv = vec2(float(uHigh), float(vHigh));
    texSlot = int(slot);
}
` + "\x00"

const defaultFragmentShader = `
#version 460 core
in vec2 uv;
flat in int texSlot;

uniform sampler2DArray tex_array;

out vec4 fragColor;

void main() {
    fragColor = texture(tex_array, vec3(uv, float(texSlot)));
}
` + "\x00"

// DefaultShader compiles the demo's unpack-and-sample shader pair,
// matching pkg/mesh.PackedVertex's bit layout.
func DefaultShader() (*openglhelper.Shader, error) {
	return openglhelper.NewShader(defaultVertexShader, defaultFragmentShader)
}

// DefaultCameraStart is a reasonable starting position overlooking the
// demo's synthetic terrain.
func DefaultCameraStart() mgl32.Vec3 {
	return mgl32.Vec3{0, 48, 48}
}
