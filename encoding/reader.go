package encoding

import (
	"github.com/arloliu/hybf/endian"
	"github.com/arloliu/hybf/errs"
)

// engine is the byte order of every multi-byte integer in the container.
var engine = endian.GetBigEndianEngine()

// Reader is a bounds-checked forward cursor over a payload slice.
//
// Every read fails with errs.ErrTruncated when the slice ends mid-record.
// The reader never copies: ReadBytes returns sub-slices of the input.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, errs.ErrTruncated
	}

	v := r.data[r.off]
	r.off++

	return v, nil
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, errs.ErrTruncated
	}

	v := engine.Uint16(r.data[r.off : r.off+2])
	r.off += 2

	return v, nil
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, errs.ErrTruncated
	}

	v := engine.Uint32(r.data[r.off : r.off+4])
	r.off += 4

	return v, nil
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, errs.ErrTruncated
	}

	v := engine.Uint64(r.data[r.off : r.off+8])
	r.off += 8

	return v, nil
}

// ReadBytes returns the next n bytes without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, errs.ErrTruncated
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.Remaining() < n {
		return errs.ErrTruncated
	}
	r.off += n

	return nil
}
