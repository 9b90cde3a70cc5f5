// Package gcformat implements the binary GEOCON file codec: the fixed
// header layout and the node records that follow it, including the
// foreign-endian detection the original format relies on (there is no
// explicit byte-order flag in the file - the reader infers it from
// whether the magic number decodes correctly).
package gcformat

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/geocongrid/geocon/internal/byteorder"
	"github.com/geocongrid/geocon/internal/gcerrors"
)

// Field-length constants, taken from the original GEOCON header layout.
const (
	InfoLen = 80
	DateLen = 24
	NameLen = 80
)

// Magic values. Magic is "GCON" read in the writer's native order;
// MagicSwapped is what that same value decodes to when read in the
// opposite order.
const (
	Magic        int32 = 0x47434f4e
	MagicSwapped int32 = 0x4e4f4347
	Version      int32 = 1
)

// Storage-direction flags, matching the file format exactly.
const (
	LatSouthToNorth int32 = 0
	LatNorthToSouth int32 = 1

	LonWestToEast int32 = 0
	LonEastToWest int32 = 1
)

// Header is a byte-exact image of the GEOCON binary file header. Field
// order, widths, and zero-padding of the character arrays all match the
// original format so files interoperate with the reference implementation.
type Header struct {
	Magic    int32
	Version  int32
	HdrLen   int32
	Reserved int32

	Info   [InfoLen]byte
	Source [InfoLen]byte
	Date   [DateLen]byte

	LatDir int32
	LonDir int32

	NRows int32
	NCols int32

	LatSouth float64
	LatNorth float64
	LonWest  float64
	LonEast  float64

	LatDelta float64
	LonDelta float64

	HorzScale float64
	VertScale float64

	FromGCS          [NameLen]byte
	FromVCS          [NameLen]byte
	FromSemiMajor    float64
	FromFlattening   float64

	ToGCS          [NameLen]byte
	ToVCS          [NameLen]byte
	ToSemiMajor    float64
	ToFlattening   float64
}

// Len is the on-disk size of Header in bytes.
func Len() int {
	return binary.Size(Header{})
}

func hostOrder() binary.ByteOrder {
	if byteorder.Native() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func oppositeOrder(o binary.ByteOrder) binary.ByteOrder {
	if o == binary.BigEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadHeader reads and decodes one GEOCON header from r.
//
// It returns the decoded header, the byte order the file turned out to be
// in, and whether that order is foreign to this host (flip). Detection
// works by decoding the header in host order first; if the magic field
// doesn't come out right either way, the file isn't a GEOCON file at all.
func ReadHeader(r io.Reader) (*Header, binary.ByteOrder, bool, error) {
	buf := make([]byte, Len())
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, false, errors.Wrap(gcerrors.ErrIOError, "reading GEOCON header")
	}

	order := hostOrder()
	hdr := &Header{}
	if err := binary.Read(bytes.NewReader(buf), order, hdr); err != nil {
		return nil, nil, false, errors.Wrap(gcerrors.ErrIOError, "decoding GEOCON header")
	}

	flip := false
	switch hdr.Magic {
	case Magic:
		// already in host order
	case MagicSwapped:
		flip = true
		order = oppositeOrder(order)
		hdr = &Header{}
		if err := binary.Read(bytes.NewReader(buf), order, hdr); err != nil {
			return nil, nil, false, errors.Wrap(gcerrors.ErrIOError, "decoding swapped GEOCON header")
		}
	default:
		return nil, nil, false, gcerrors.ErrInvalidFile
	}

	glog.Infof("read GEOCON header: nrows=%d ncols=%d flip=%v", hdr.NRows, hdr.NCols, flip)

	return hdr, order, flip, nil
}

// WriteHeader writes hdr to w using the given byte order. Character
// fields are never swapped; only the numeric scalars are order-sensitive.
func WriteHeader(w io.Writer, hdr *Header, order binary.ByteOrder) error {
	if err := binary.Write(w, order, hdr); err != nil {
		return errors.Wrap(gcerrors.ErrIOError, "writing GEOCON header")
	}
	return nil
}

// TruncatedString trims a zero-padded fixed-length char field to its
// content, the way the header's info/source/date/gcs/vcs fields are
// stored on disk.
func TruncatedString(b []byte) string {
	n := bytes.IndexByte(b, 0)
	if n < 0 {
		n = len(b)
	}
	return string(b[:n])
}

// PutString copies s into a fixed-length, zero-padded char field,
// truncating if s is too long for dst.
func PutString(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, s)
}
