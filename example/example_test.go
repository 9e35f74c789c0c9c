package example

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bend-n/raad-codegen/wire"
)

var header = Header{
	Magic:      PNGMagic,
	Width:      800,
	Height:     600,
	Channels:   3,
	Colorspace: 1,
}

var (
	headerLE = []byte{0x89, 0x50, 0x4E, 0x47, 0x20, 0x03, 0x00, 0x00, 0x58, 0x02, 0x00, 0x00, 0x03, 0x01}
	headerBE = []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x00, 0x03, 0x20, 0x00, 0x00, 0x02, 0x58, 0x03, 0x01}
)

var errBoom = errors.New("boom")

// recordingWriter keeps every write separately
type recordingWriter struct {
	writes [][]byte
	failAt int // index of the write that fails; -1 never
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	if len(w.writes) == w.failAt {
		w.writes = append(w.writes, nil)
		return 0, errBoom
	}
	w.writes = append(w.writes, append([]byte(nil), b...))
	return len(b), nil
}

func TestHeaderBytes(t *testing.T) {
	var le, be bytes.Buffer
	require.NoError(t, header.WriteLE(&le))
	require.NoError(t, header.WriteBE(&be))

	assert.Equal(t, headerLE, le.Bytes())
	assert.Equal(t, headerBE, be.Bytes())
	assert.Len(t, le.Bytes(), HeaderSize)
	assert.NotEqual(t, le.Bytes(), be.Bytes())
}

func TestHeaderRoundTrip(t *testing.T) {
	got, err := Header{}.ReadLE(bytes.NewReader(headerLE))
	require.NoError(t, err)
	assert.Equal(t, header, got)

	got, err = wire.ReadBE[Header](bytes.NewReader(headerBE))
	require.NoError(t, err)
	assert.Equal(t, header, got)

	// the orders are not interchangeable
	got, err = Header{}.ReadBE(bytes.NewReader(headerLE))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x20030000), got.Width)
}

func TestHeaderFieldOrder(t *testing.T) {
	w := &recordingWriter{failAt: -1}
	require.NoError(t, header.WriteLE(w))

	want := [][]byte{
		{0x89, 0x50, 0x4E, 0x47},
		{0x20, 0x03, 0x00, 0x00},
		{0x58, 0x02, 0x00, 0x00},
		{0x03},
		{0x01},
	}
	assert.Equal(t, want, w.writes)
}

func TestHeaderWriteShortCircuit(t *testing.T) {
	for failAt := 0; failAt < 5; failAt++ {
		w := &recordingWriter{failAt: failAt}
		err := header.WriteBE(w)

		// returned verbatim, and nothing after the failure is attempted
		assert.Same(t, errBoom, err)
		assert.Len(t, w.writes, failAt+1)
	}
}

// failingReader serves data one call at a time and fails the failAt-th call
type failingReader struct {
	data   []byte
	reads  int
	failAt int
}

func (r *failingReader) Read(b []byte) (int, error) {
	r.reads++
	if r.reads-1 == r.failAt {
		return 0, errBoom
	}
	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestHeaderReadShortCircuit(t *testing.T) {
	for failAt := 0; failAt < 5; failAt++ {
		r := &failingReader{data: headerLE, failAt: failAt}
		got, err := Header{}.ReadLE(r)

		// returned verbatim, no partial record and no read past field k
		assert.Same(t, errBoom, err)
		assert.Equal(t, Header{}, got)
		assert.Equal(t, failAt+1, r.reads)
	}
}

func TestHeaderMagicMismatch(t *testing.T) {
	data := append([]byte{'G', 'I', 'F', '8'}, headerLE[4:]...)
	r := bytes.NewReader(data)

	_, err := Header{}.ReadLE(r)
	var mismatch *wire.MismatchError
	require.True(t, errors.As(err, &mismatch), "error = %v", err)
	assert.Equal(t, "Magic", mismatch.Field)
	assert.Equal(t, PNGMagic, mismatch.Want)

	// fails before reading the next field
	assert.Equal(t, len(data)-4, r.Len())
}

func TestHeaderTruncated(t *testing.T) {
	got, err := Header{}.ReadLE(bytes.NewReader(headerLE[:7]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, Header{}, got, "no partial record")

	_, err = Header{}.ReadLE(bytes.NewReader(headerLE[:4]))
	assert.ErrorIs(t, err, io.EOF)

	_, err = Header{}.ReadBE(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}

func TestPositionalNamedEquivalent(t *testing.T) {
	positional := Coord{Lat: 52, Lon: -4}
	named := NamedCoord{Lat: 52, Lon: -4}

	var a, b bytes.Buffer
	require.NoError(t, positional.WriteLE(&a))
	require.NoError(t, named.WriteLE(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Equal(t, []byte{52, 0, 0, 0, 0xFC, 0xFF, 0xFF, 0xFF}, a.Bytes())

	a.Reset()
	b.Reset()
	require.NoError(t, positional.WriteBE(&a))
	require.NoError(t, named.WriteBE(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())

	gotNamed, err := NamedCoord{}.ReadBE(bytes.NewReader(a.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, named, gotNamed)

	gotPositional, err := Coord{}.ReadBE(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, positional, gotPositional)
}

func TestTagged(t *testing.T) {
	v := Tagged[Coord, Level]{Value: Coord{Lat: 1, Lon: 2}, Label: Warn}

	var buf bytes.Buffer
	require.NoError(t, WriteTaggedBE(&buf, v))
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2, 2}, buf.Bytes())

	got, err := ReadTaggedBE[Coord, Level](&buf)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, "warn", got.Label.String())
}

func TestEntryPadding(t *testing.T) {
	data := []byte{7, 0xAA, 0xBB, 0xCC, 0x10, 0x00, 0x00, 0x00}
	require.Len(t, data, EntrySize)

	e, err := Entry{}.ReadLE(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint8(7), e.Kind)
	assert.Equal(t, uint32(16), e.Offset)

	e, err = wire.ReadBE[Entry](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x10000000), e.Offset)
}

func TestChunkRoundTrip(t *testing.T) {
	chunk := Chunk{
		Kind:   [4]byte{'I', 'D', 'A', 'T'},
		Points: [2]Coord{{Lat: 1, Lon: -1}, {Lat: 1 << 20, Lon: -(1 << 20)}},
		Scale:  0.5,
		Final:  true,
		Tag:    Tagged[NamedCoord, Level]{Value: NamedCoord{Lat: 3, Lon: 4}, Label: Info},
		Sum:    0xBEEF,
	}

	var le, be bytes.Buffer
	require.NoError(t, wire.WriteLE(&le, chunk))
	require.NoError(t, wire.WriteBE(&be, chunk))
	assert.Equal(t, 4+2*CoordSize+4+1+NamedCoordSize+1+2, le.Len())
	assert.NotEqual(t, le.Bytes(), be.Bytes())

	gotLE, err := wire.ReadLE[Chunk](&le)
	require.NoError(t, err)
	assert.Equal(t, chunk, gotLE)
	assert.Zero(t, le.Len(), "every byte consumed")

	gotBE, err := Chunk{}.ReadBE(&be)
	require.NoError(t, err)
	assert.Equal(t, chunk, gotBE)
}

func TestChunkInvalidBool(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Chunk{}.WriteLE(&buf))
	data := buf.Bytes()
	data[4+2*CoordSize+4] = 2 // Final

	_, err := Chunk{}.ReadLE(bytes.NewReader(data))
	assert.ErrorIs(t, err, wire.ErrInvalidBool)
}
