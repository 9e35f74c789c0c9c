package example

import (
	"fmt"
	"io"

	"github.com/bend-n/raad-codegen/wire"
)

//go:generate go run github.com/bend-n/raad-codegen/cmd/raadgen

// Level is a one byte severity. Its codec is written by hand, so it can
// instantiate the type parameters of generic records.
type Level uint8

const (
	Debug Level = iota
	Info
	Warn
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

func (l Level) WriteLE(w io.Writer) error { return wire.WriteUint8(w, uint8(l)) }

func (l Level) WriteBE(w io.Writer) error { return wire.WriteUint8(w, uint8(l)) }

func (Level) ReadLE(r io.Reader) (Level, error) {
	v, err := wire.ReadUint8(r)
	return Level(v), err
}

func (Level) ReadBE(r io.Reader) (Level, error) {
	v, err := wire.ReadUint8(r)
	return Level(v), err
}

type Lat int32
type Lon int32

// Coord is constructed by position: both fields are embedded.
//
// @raad
type Coord struct {
	Lat
	Lon
}

// NamedCoord has the layout of Coord with labeled fields.
//
// @raad
type NamedCoord struct {
	Lat Lat
	Lon Lon
}

// Tagged pairs a value with a label, each encoded by its own codec.
//
// @raad
type Tagged[T any, U fmt.Stringer] struct {
	Value T
	Label U
}

// Entry is an index entry with reserved bytes.
//
// @raad codec=read
type Entry struct {
	Kind   uint8
	_      [3]byte
	Offset uint32
}

// @raad
type Chunk struct {
	Kind   [4]byte
	Points [2]Coord
	Scale  float32
	Final  bool
	Tag    Tagged[NamedCoord, Level]
	Sum    uint16
}
