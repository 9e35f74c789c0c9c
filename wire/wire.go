// Package wire is the runtime used by raadgen generated code.
//
// It provides fixed-width primitive codecs for both byte orders and the
// contracts a type must satisfy to appear as a field of a generated record:
//
//	type WriterLE interface { WriteLE(w io.Writer) error }
//	type ReaderLE[T any] interface { ReadLE(r io.Reader) (T, error) }
//
// and their big-endian twins. Generated non-generic records implement all
// four, so they nest in other records. Readers are called on the zero value
// of T and must not depend on the receiver's contents.
package wire

import (
	"encoding/binary"
	"io"
)

// ByteOrder selects the byte order of the multi-byte primitives.
type ByteOrder uint8

const (
	LE ByteOrder = iota // little-endian
	BE                  // big-endian
)

func (o ByteOrder) order() binary.ByteOrder {
	if o == BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o ByteOrder) String() string {
	if o == BE {
		return "big-endian"
	}
	return "little-endian"
}

// WriterLE is implemented by values that write themselves in little-endian order.
type WriterLE interface {
	WriteLE(w io.Writer) error
}

// WriterBE is implemented by values that write themselves in big-endian order.
type WriterBE interface {
	WriteBE(w io.Writer) error
}

// ReaderLE is implemented by types that construct a new T from a
// little-endian source.
type ReaderLE[T any] interface {
	ReadLE(r io.Reader) (T, error)
}

// ReaderBE is implemented by types that construct a new T from a
// big-endian source.
type ReaderBE[T any] interface {
	ReadBE(r io.Reader) (T, error)
}

// CodecLE is the full little-endian contract.
type CodecLE[T any] interface {
	WriterLE
	ReaderLE[T]
}

// CodecBE is the full big-endian contract.
type CodecBE[T any] interface {
	WriterBE
	ReaderBE[T]
}

// WriteLE writes v in little-endian order.
func WriteLE[T WriterLE](w io.Writer, v T) error {
	return v.WriteLE(w)
}

// WriteBE writes v in big-endian order.
func WriteBE[T WriterBE](w io.Writer, v T) error {
	return v.WriteBE(w)
}

// ReadLE reads a new T in little-endian order.
func ReadLE[T ReaderLE[T]](r io.Reader) (T, error) {
	var zero T
	return zero.ReadLE(r)
}

// ReadBE reads a new T in big-endian order.
func ReadBE[T ReaderBE[T]](r io.Reader) (T, error) {
	var zero T
	return zero.ReadBE(r)
}
