package testdata

type Lat int32
type Lon int32

type (
	// Coord is addressed positionally.
	//
	// @raad
	Coord struct {
		Lat
		Lon
	}

	// @raad codec=read
	Entry struct {
		Kind   uint8
		_      [3]byte
		Offset uint32
	}
)

// @raad
type Grid[K, V comparable] struct {
	X, Y  uint16
	Cells [2][2]V
	Key   K `raad:"equals"`
}
