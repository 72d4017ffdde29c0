package resource

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"

	"golang.org/x/image/draw"
)

// FileImageProvider is a concrete ImageProvider backed by PNG files on
// disk. Assets are content-addressed: Register reads a file, derives
// its ResourceId from the bytes via FromBytes, and remembers the path
// so a later LoadImage can decode it lazily and cache the result.
type FileImageProvider struct {
	mu      sync.RWMutex
	paths   map[ID]string
	cache   map[ID]image.Image
	builtin map[ID]image.Image
	texSize int
}

// NewFileImageProvider builds a provider whose synthesized built-in
// images (for resource.Missing and resource.Pending) are texSize x
// texSize, matching whatever slot size the ArrayTextureLayout uses.
func NewFileImageProvider(texSize int) *FileImageProvider {
	p := &FileImageProvider{
		paths:   make(map[ID]string),
		cache:   make(map[ID]image.Image),
		texSize: texSize,
	}
	p.builtin = map[ID]image.Image{
		Missing: checkerboard(texSize, color.RGBA{R: 255, A: 255}, color.RGBA{B: 0, A: 255}),
		Pending: solid(texSize, color.RGBA{R: 128, G: 128, B: 128, A: 255}),
	}
	return p
}

// Register reads path's contents and derives its ResourceId, without
// decoding the image yet; decoding happens on first LoadImage.
func (p *FileImageProvider) Register(path string) (ID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ID{}, fmt.Errorf("resource: register %s: %w", path, err)
	}
	id := FromBytes(data)

	p.mu.Lock()
	p.paths[id] = path
	p.mu.Unlock()

	return id, nil
}

// LoadImage implements ImageProvider.
func (p *FileImageProvider) LoadImage(id ID) Status {
	if img, ok := p.builtin[id]; ok {
		return Status{Image: img}
	}

	p.mu.RLock()
	if img, ok := p.cache[id]; ok {
		p.mu.RUnlock()
		return Status{Image: img}
	}
	path, ok := p.paths[id]
	p.mu.RUnlock()
	if !ok {
		return Status{Err: &RetrieveError{Kind: NotFound}}
	}

	file, err := os.Open(path)
	if err != nil {
		return Status{Err: &RetrieveError{Kind: Other, Err: err}}
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		return Status{Err: &RetrieveError{Kind: Other, Err: fmt.Errorf("decode %s: %w", path, err)}}
	}

	resized := resizeToSlot(decoded, p.texSize)

	p.mu.Lock()
	p.cache[id] = resized
	p.mu.Unlock()

	return Status{Image: resized}
}

// resizeToSlot scales src to size x size so every slot in an
// ArrayTextureLayout gets uniformly sized layers regardless of the
// source asset's native resolution.
func resizeToSlot(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func solid(size int, c color.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return dst
}

func checkerboard(size int, a, b color.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / 8
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if ((x/cell)+(y/cell))%2 == 1 {
				c = b
			}
			dst.Set(x, y, c)
		}
	}
	return dst
}
