package voxel

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Chunk file format version. The header records major/minor/patch
// separately so a reader can detect an incompatible payload layout
// before attempting to parse it.
const (
	formatVersionMajor uint64 = 0
	formatVersionMinor uint64 = 1
	formatVersionPatch uint64 = 0
)

const headerSize = 5 * 8 // 5 little-endian u64 fields

// WriteTo serializes the chunk as a 40-byte header followed by a
// mode-specific payload, all little-endian. It satisfies io.WriterTo.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	var header [headerSize]byte
	binary.LittleEndian.PutUint64(header[0:8], formatVersionMajor)
	binary.LittleEndian.PutUint64(header[8:16], formatVersionMinor)
	binary.LittleEndian.PutUint64(header[16:24], formatVersionPatch)
	binary.LittleEndian.PutUint64(header[24:32], uint64(c.mode))
	binary.LittleEndian.PutUint64(header[32:40], c.revision)

	n, err := w.Write(header[:])
	total := int64(n)
	if err != nil {
		return total, fmt.Errorf("voxel: write chunk header: %w", err)
	}

	switch c.mode {
	case modeUniform:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(c.uniformTile))
		n, err = w.Write(buf[:])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("voxel: write uniform tile: %w", err)
		}
		return total, nil

	case modeSmall:
		n, err = w.Write(c.small.data[:])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("voxel: write small cell data: %w", err)
		}
		var countBuf [2]byte
		count := int(c.small.highestIdx) + 1
		binary.LittleEndian.PutUint16(countBuf[:], uint16(count))
		n, err = w.Write(countBuf[:])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("voxel: write small palette count: %w", err)
		}
		for i := 0; i < count; i++ {
			var tb [2]byte
			binary.LittleEndian.PutUint16(tb[:], uint16(c.small.palette[i]))
			n, err = w.Write(tb[:])
			total += int64(n)
			if err != nil {
				return total, fmt.Errorf("voxel: write small palette entry: %w", err)
			}
		}
		return total, nil

	default: // modeLarge
		buf := make([]byte, 2*chunkVolume)
		for i, v := range c.large.data {
			binary.LittleEndian.PutUint16(buf[i*2:i*2+2], v)
		}
		n, err = w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("voxel: write large cell data: %w", err)
		}
		var countBuf [4]byte
		binary.LittleEndian.PutUint32(countBuf[:], uint32(len(c.large.palette)))
		n, err = w.Write(countBuf[:])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("voxel: write large palette count: %w", err)
		}
		for idx, tile := range c.large.palette {
			var entry [4]byte
			binary.LittleEndian.PutUint16(entry[0:2], idx)
			binary.LittleEndian.PutUint16(entry[2:4], uint16(tile))
			n, err = w.Write(entry[:])
			total += int64(n)
			if err != nil {
				return total, fmt.Errorf("voxel: write large palette entry: %w", err)
			}
		}
		return total, nil
	}
}

// ReadChunkFrom deserializes a chunk previously written by
// (*Chunk).WriteTo, reconstructing its mode, revision, and palette.
func ReadChunkFrom(r io.Reader) (*Chunk, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("voxel: read chunk header: %w", err)
	}
	mode := chunkMode(binary.LittleEndian.Uint64(header[24:32]))
	revision := binary.LittleEndian.Uint64(header[32:40])

	c := &Chunk{revision: revision}

	switch mode {
	case modeUniform:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("voxel: read uniform tile: %w", err)
		}
		c.mode = modeUniform
		c.uniformTile = TileId(binary.LittleEndian.Uint16(buf[:]))

	case modeSmall:
		s := &smallChunk{reverse: make(map[TileId]uint8, 256)}
		if _, err := io.ReadFull(r, s.data[:]); err != nil {
			return nil, fmt.Errorf("voxel: read small cell data: %w", err)
		}
		var countBuf [2]byte
		if _, err := io.ReadFull(r, countBuf[:]); err != nil {
			return nil, fmt.Errorf("voxel: read small palette count: %w", err)
		}
		count := int(binary.LittleEndian.Uint16(countBuf[:]))
		for i := 0; i < count; i++ {
			var tb [2]byte
			if _, err := io.ReadFull(r, tb[:]); err != nil {
				return nil, fmt.Errorf("voxel: read small palette entry: %w", err)
			}
			tile := TileId(binary.LittleEndian.Uint16(tb[:]))
			s.palette[i] = tile
			s.reverse[tile] = uint8(i)
		}
		s.highestIdx = uint8(count - 1)
		c.mode = modeSmall
		c.small = s

	case modeLarge:
		l := &largeChunk{
			palette: make(map[uint16]TileId),
			reverse: make(map[TileId]uint16),
		}
		buf := make([]byte, 2*chunkVolume)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("voxel: read large cell data: %w", err)
		}
		for i := range l.data {
			l.data[i] = binary.LittleEndian.Uint16(buf[i*2 : i*2+2])
		}
		var countBuf [4]byte
		if _, err := io.ReadFull(r, countBuf[:]); err != nil {
			return nil, fmt.Errorf("voxel: read large palette count: %w", err)
		}
		count := binary.LittleEndian.Uint32(countBuf[:])
		var maxIdx uint16
		for i := uint32(0); i < count; i++ {
			var entry [4]byte
			if _, err := io.ReadFull(r, entry[:]); err != nil {
				return nil, fmt.Errorf("voxel: read large palette entry: %w", err)
			}
			idx := binary.LittleEndian.Uint16(entry[0:2])
			tile := TileId(binary.LittleEndian.Uint16(entry[2:4]))
			l.palette[idx] = tile
			l.reverse[tile] = idx
			if idx >= maxIdx {
				maxIdx = idx + 1
			}
		}
		l.nextIndex = maxIdx
		c.mode = modeLarge
		c.large = l

	default:
		return nil, fmt.Errorf("voxel: unknown chunk mode tag %d", mode)
	}

	return c, nil
}
