package resource

// Sentinel resource identifiers reserved by ArrayTextureLayout for the
// built-in "missing" and "pending" textures. They are deliberately not
// produced by FromBytes of any real asset; their hash bytes encode
// which sentinel they are so Equal still behaves sanely if compared.
var (
	Missing = ID{Version: CurrentFormat, Length: 0, Hash: [HashSize]byte{0xFF}}
	Pending = ID{Version: CurrentFormat, Length: 0, Hash: [HashSize]byte{0xFE}}
)
