package mesh

import "testing"

func TestPackVertexRoundTrip(t *testing.T) {
	v := PackVertex(31, 0, 17, 4095, true, false)
	x, y, z, slot, u, vh := v.Unpack()
	if x != 31 || y != 0 || z != 17 || slot != 4095 || u != true || vh != false {
		t.Fatalf("round trip mismatch: got (%d,%d,%d,%d,%v,%v)", x, y, z, slot, u, vh)
	}
}

func TestPackVertexFieldsIndependent(t *testing.T) {
	a := PackVertex(1, 2, 3, 10, false, true)
	b := PackVertex(1, 2, 3, 10, true, true)
	if a == b {
		t.Fatalf("expected differing uHigh to change the packed value")
	}
}
