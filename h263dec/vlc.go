/*
DESCRIPTION
  vlc.go provides the variable-length-code table walker. Code tables are
  flat arrays of entries forming a binary DAG: forks name the entry to
  consider for a zero or one bit, leaves carry the decoded value.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263dec

import (
	"github.com/pkg/errors"

	"github.com/ausocean/h263/h263dec/bits"
)

// vlcEntry is one slot of a code table. A leaf carries the decoded value;
// a fork holds the slot indices to follow for a zero and a one bit.
type vlcEntry[T any] struct {
	leaf      bool
	value     T
	zero, one int
}

func fork[T any](zero, one int) vlcEntry[T] {
	return vlcEntry[T]{zero: zero, one: one}
}

func end[T any](v T) vlcEntry[T] {
	return vlcEntry[T]{leaf: true, value: v}
}

// readVLC walks table bit by bit from slot 0 until it lands on a leaf.
// Termination is a property of table construction; an index outside the
// table indicates a malformed table and is reported as ErrInternalDecoder.
func readVLC[T any](r *bits.Reader, table []vlcEntry[T]) (T, error) {
	var zero T
	idx := 0
	for {
		if idx >= len(table) {
			return zero, errors.Wrap(ErrInternalDecoder, "vlc index out of table")
		}
		e := table[idx]
		if e.leaf {
			return e.value, nil
		}
		b, err := r.ReadBool()
		if err != nil {
			return zero, exhausted(err)
		}
		if b {
			idx = e.one
		} else {
			idx = e.zero
		}
	}
}
