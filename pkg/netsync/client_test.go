package netsync

import (
	"net"
	"testing"
	"time"

	"github.com/leterax/go-voxels/pkg/voxel"
	"github.com/stretchr/testify/require"
)

func TestTilesToChunkRoundTripsCanonicalIndex(t *testing.T) {
	const volume = voxel.ChunkSize * voxel.ChunkSize * voxel.ChunkSize
	tiles := make([]voxel.TileId, volume)
	tiles[voxel.XYZToIndex(1, 2, 3)] = 7

	c := TilesToChunk(tiles)
	require.Equal(t, voxel.TileId(7), c.Get(1, 2, 3))
	require.Equal(t, voxel.TileId(0), c.Get(0, 0, 0))
}

func TestClientReceivesMonoChunkOverWire(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	client := &Client{conn: clientConn}
	received := make(chan voxel.Pos, 1)
	client.OnMonoChunk = func(cpos voxel.Pos, tile voxel.TileId) {
		received <- cpos
	}

	go func() {
		_ = client.ProcessPackets()
	}()

	go func() {
		packet := []byte{PacketIDSendMonoChunk, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 5}
		_, _ = serverConn.Write(packet)
	}()

	select {
	case cpos := <-received:
		require.Equal(t, voxel.Pos{X: 1, Y: 2, Z: 3}, cpos)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for mono chunk callback")
	}
}
