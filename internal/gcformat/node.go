package gcformat

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/geocongrid/geocon/internal/gcerrors"
)

// Node is one GEOCON grid point: a shift triple in header-scale units.
type Node struct {
	LatValue float32
	LonValue float32
	HgtValue float32
}

// NodeSize is the on-disk size of a single node record.
const NodeSize = 12 // 3 x float32

// ReadNode reads one node record from r using the given byte order. A
// short read is the caller's concern (the fetch layer turns it into a
// zero-shift node, per the ghost-cell policy); this function simply
// reports it as an error.
func ReadNode(r io.Reader, order binary.ByteOrder) (Node, error) {
	var buf [NodeSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Node{}, errors.Wrap(gcerrors.ErrIOError, "reading node record")
	}
	return Node{
		LatValue: math.Float32frombits(order.Uint32(buf[0:4])),
		LonValue: math.Float32frombits(order.Uint32(buf[4:8])),
		HgtValue: math.Float32frombits(order.Uint32(buf[8:12])),
	}, nil
}

// WriteNode writes one node record to w using the given byte order.
func WriteNode(w io.Writer, n Node, order binary.ByteOrder) error {
	var buf [NodeSize]byte
	order.PutUint32(buf[0:4], math.Float32bits(n.LatValue))
	order.PutUint32(buf[4:8], math.Float32bits(n.LonValue))
	order.PutUint32(buf[8:12], math.Float32bits(n.HgtValue))
	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(gcerrors.ErrIOError, "writing node record")
	}
	return nil
}
