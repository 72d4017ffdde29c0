// Package netsync is a trimmed network client for streaming chunk and
// tile updates into a voxel.SyncSpace. It keeps the teacher's
// big-endian, fixed-packet-ID wire style (pkg/network/client.go)
// rather than inventing a new framing, but carries TileId (uint16)
// payloads instead of the teacher's single-byte BlockType, and drops
// the entity/chat packet kinds the spec's core has no use for.
package netsync

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/leterax/go-voxels/pkg/voxel"
)

// ClientBound packet IDs.
const (
	PacketIDSendChunk     uint8 = 0x00
	PacketIDSendMonoChunk uint8 = 0x01
	PacketIDTileUpdate    uint8 = 0x02
)

// ServerBound packet IDs.
const (
	PacketIDRequestChunk uint8 = 0x00
	PacketIDEditTile     uint8 = 0x01
)

// Client is a connection to a chunk-sync server. Callbacks fire from
// whatever goroutine calls ProcessPackets; callers that want to feed a
// voxel.SyncSpace synchronously should do so directly from a callback,
// since SyncSpace is safe for concurrent use.
type Client struct {
	conn net.Conn

	OnChunkReceive func(cpos voxel.Pos, tiles []voxel.TileId)
	OnMonoChunk    func(cpos voxel.Pos, tile voxel.TileId)
	OnTileUpdate   func(pos voxel.Pos, tile voxel.TileId)
}

// Dial connects to a chunk-sync server at address.
func Dial(address string) (*Client, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("netsync: dial %s: %w", address, err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// RequestChunk asks the server to (re)send the chunk at cpos.
func (c *Client) RequestChunk(cpos voxel.Pos) error {
	packet := make([]byte, 1+4*3)
	packet[0] = PacketIDRequestChunk
	binary.BigEndian.PutUint32(packet[1:], uint32(cpos.X))
	binary.BigEndian.PutUint32(packet[5:], uint32(cpos.Y))
	binary.BigEndian.PutUint32(packet[9:], uint32(cpos.Z))
	_, err := c.conn.Write(packet)
	return err
}

// SendTileEdit tells the server the client is editing a single tile.
func (c *Client) SendTileEdit(pos voxel.Pos, tile voxel.TileId) error {
	packet := make([]byte, 1+4*3+2)
	packet[0] = PacketIDEditTile
	binary.BigEndian.PutUint32(packet[1:], uint32(pos.X))
	binary.BigEndian.PutUint32(packet[5:], uint32(pos.Y))
	binary.BigEndian.PutUint32(packet[9:], uint32(pos.Z))
	binary.BigEndian.PutUint16(packet[13:], uint16(tile))
	_, err := c.conn.Write(packet)
	return err
}

// ProcessPackets reads and dispatches packets from the server until the
// connection closes or a framing error occurs.
func (c *Client) ProcessPackets() error {
	for {
		var packetID uint8
		if err := binary.Read(c.conn, binary.BigEndian, &packetID); err != nil {
			if err == io.EOF {
				return fmt.Errorf("netsync: connection closed by server")
			}
			return fmt.Errorf("netsync: read packet id: %w", err)
		}

		switch packetID {
		case PacketIDSendChunk:
			if err := c.handleSendChunk(); err != nil {
				return err
			}
		case PacketIDSendMonoChunk:
			if err := c.handleSendMonoChunk(); err != nil {
				return err
			}
		case PacketIDTileUpdate:
			if err := c.handleTileUpdate(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("netsync: unknown packet id %d", packetID)
		}
	}
}

func (c *Client) readChunkPos() (voxel.Pos, error) {
	var x, y, z int32
	for _, dst := range []*int32{&x, &y, &z} {
		if err := binary.Read(c.conn, binary.BigEndian, dst); err != nil {
			return voxel.Pos{}, fmt.Errorf("netsync: read chunk pos: %w", err)
		}
	}
	return voxel.Pos{X: x, Y: y, Z: z}, nil
}

func (c *Client) handleSendChunk() error {
	cpos, err := c.readChunkPos()
	if err != nil {
		return err
	}

	const volume = voxel.ChunkSize * voxel.ChunkSize * voxel.ChunkSize
	raw := make([]byte, volume*2)
	if _, err := io.ReadFull(c.conn, raw); err != nil {
		return fmt.Errorf("netsync: read chunk payload: %w", err)
	}

	tiles := make([]voxel.TileId, volume)
	for i := range tiles {
		tiles[i] = voxel.TileId(binary.BigEndian.Uint16(raw[i*2:]))
	}

	if c.OnChunkReceive != nil {
		c.OnChunkReceive(cpos, tiles)
	}
	return nil
}

func (c *Client) handleSendMonoChunk() error {
	cpos, err := c.readChunkPos()
	if err != nil {
		return err
	}
	var tile uint16
	if err := binary.Read(c.conn, binary.BigEndian, &tile); err != nil {
		return fmt.Errorf("netsync: read mono tile: %w", err)
	}
	if c.OnMonoChunk != nil {
		c.OnMonoChunk(cpos, voxel.TileId(tile))
	}
	return nil
}

func (c *Client) handleTileUpdate() error {
	var x, y, z int32
	var tile uint16
	for _, dst := range []*int32{&x, &y, &z} {
		if err := binary.Read(c.conn, binary.BigEndian, dst); err != nil {
			return fmt.Errorf("netsync: read tile position: %w", err)
		}
	}
	if err := binary.Read(c.conn, binary.BigEndian, &tile); err != nil {
		return fmt.Errorf("netsync: read tile value: %w", err)
	}
	if c.OnTileUpdate != nil {
		c.OnTileUpdate(voxel.Pos{X: x, Y: y, Z: z}, voxel.TileId(tile))
	}
	return nil
}

// TilesToChunk builds a Chunk from a flat tile slice received over the
// wire, using the same canonical flat index the rest of the core uses
// so wire order matches in-memory order.
func TilesToChunk(tiles []voxel.TileId) *voxel.Chunk {
	c := voxel.NewChunk(voxel.TileEmpty)
	for i, tile := range tiles {
		x, y, z := voxel.IndexToXYZ(i)
		c.Set(x, y, z, tile)
	}
	return c
}
