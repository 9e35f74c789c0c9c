package testdata

import "fmt"

// @raad
type Header struct {
	Magic      [4]byte `raad:"equals=PNGMagic"`
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

var PNGMagic = [4]byte{0x89, 'P', 'N', 'G'}

// @raad codec=write
type Pair[T any, U fmt.Stringer] struct {
	Yar T
	Var U
}

// No annotation - should be skipped
type IgnoredType struct {
	Field uint32
}

type PageID uint64
