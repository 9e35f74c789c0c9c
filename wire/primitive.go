package wire

import (
	"io"
	"math"
)

func write(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

// WriteBytes writes b as is. Used for fixed byte arrays.
func WriteBytes(w io.Writer, b []byte) error {
	return write(w, b)
}

// ReadBytes fills b from r.
func ReadBytes(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return err
}

func WriteBool(w io.Writer, v bool) error {
	var b byte
	if v {
		b = 1
	}
	return write(w, []byte{b})
}

func ReadBool(r io.Reader) (bool, error) {
	v, err := ReadUint8(r)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, ErrInvalidBool
}

func WriteUint8(w io.Writer, v uint8) error {
	return write(w, []byte{v})
}

func ReadUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func WriteInt8(w io.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)
	return int8(v), err
}

func WriteUint16(w io.Writer, o ByteOrder, v uint16) error {
	var b [2]byte
	o.order().PutUint16(b[:], v)
	return write(w, b[:])
}

func ReadUint16(r io.Reader, o ByteOrder) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return o.order().Uint16(b[:]), nil
}

func WriteInt16(w io.Writer, o ByteOrder, v int16) error {
	return WriteUint16(w, o, uint16(v))
}

func ReadInt16(r io.Reader, o ByteOrder) (int16, error) {
	v, err := ReadUint16(r, o)
	return int16(v), err
}

func WriteUint32(w io.Writer, o ByteOrder, v uint32) error {
	var b [4]byte
	o.order().PutUint32(b[:], v)
	return write(w, b[:])
}

func ReadUint32(r io.Reader, o ByteOrder) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return o.order().Uint32(b[:]), nil
}

func WriteInt32(w io.Writer, o ByteOrder, v int32) error {
	return WriteUint32(w, o, uint32(v))
}

func ReadInt32(r io.Reader, o ByteOrder) (int32, error) {
	v, err := ReadUint32(r, o)
	return int32(v), err
}

func WriteUint64(w io.Writer, o ByteOrder, v uint64) error {
	var b [8]byte
	o.order().PutUint64(b[:], v)
	return write(w, b[:])
}

func ReadUint64(r io.Reader, o ByteOrder) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return o.order().Uint64(b[:]), nil
}

func WriteInt64(w io.Writer, o ByteOrder, v int64) error {
	return WriteUint64(w, o, uint64(v))
}

func ReadInt64(r io.Reader, o ByteOrder) (int64, error) {
	v, err := ReadUint64(r, o)
	return int64(v), err
}

func WriteFloat32(w io.Writer, o ByteOrder, v float32) error {
	return WriteUint32(w, o, math.Float32bits(v))
}

func ReadFloat32(r io.Reader, o ByteOrder) (float32, error) {
	v, err := ReadUint32(r, o)
	return math.Float32frombits(v), err
}

func WriteFloat64(w io.Writer, o ByteOrder, v float64) error {
	return WriteUint64(w, o, math.Float64bits(v))
}

func ReadFloat64(r io.Reader, o ByteOrder) (float64, error) {
	v, err := ReadUint64(r, o)
	return math.Float64frombits(v), err
}
