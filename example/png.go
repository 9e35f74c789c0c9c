package example

//go:generate go run github.com/bend-n/raad-codegen/cmd/raadgen

// PNGMagic opens every image header.
var PNGMagic = [4]byte{0x89, 'P', 'N', 'G'}

// Header is a PNG-like image header.
//
// @raad
type Header struct {
	Magic      [4]byte `raad:"equals=PNGMagic"`
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}
