/*
DESCRIPTION
  bits.go provides a bit-granularity reader over a byte slice, with
  checkpoint and rollback support for backtracking parsers.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a bit reader over an in-memory byte slice. Unlike a
// stream-backed reader, positions are cheap values; a parse that goes wrong
// can roll the cursor back to a previously saved checkpoint.
package bits

import "io"

// Reader reads a byte slice as an ordered sequence of bits, most significant
// bit first. The zero value is a reader over no data.
type Reader struct {
	data []byte
	pos  uint // number of bits already consumed
}

// NewReader returns a Reader over data. The reader borrows data; the caller
// must not mutate it while the reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// BitsRemaining returns the number of unread bits left in the source.
func (r *Reader) BitsRemaining() uint {
	total := uint(len(r.data)) * 8
	if r.pos >= total {
		return 0
	}
	return total - r.pos
}

// BitPosition returns the number of bits consumed so far.
func (r *Reader) BitPosition() uint {
	return r.pos
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (r *Reader) ByteAligned() bool {
	return r.pos%8 == 0
}

// ByteAlign advances the cursor to the next byte boundary. It is a no-op on
// an already aligned reader, and never fails; aligning may leave the cursor
// at the very end of the data.
func (r *Reader) ByteAlign() {
	if rem := r.pos % 8; rem != 0 {
		r.pos += 8 - rem
	}
}

// PeekBits returns the next n bits in the least-significant part of a
// uint32 without advancing the cursor. For example, with a source
// []byte{0x8f, 0xe3} (1000 1111, 1110 0011), consecutive 4-bit reads
// followed by a 4-bit peek yield 0x8, 0xf, 0xe.
//
// n must not exceed 32. If fewer than n bits remain, PeekBits returns
// io.ErrUnexpectedEOF and the cursor is unchanged.
func (r *Reader) PeekBits(n uint) (uint32, error) {
	if n > 32 {
		return 0, ErrBadBitCount
	}
	if r.BitsRemaining() < n {
		return 0, io.ErrUnexpectedEOF
	}

	var accum uint32
	pos := r.pos
	for left := n; left > 0; {
		byt := r.data[pos/8] << (pos % 8)
		inByte := 8 - pos%8
		take := inByte
		if left < take {
			take = left
		}

		accum = accum<<take | uint32(byt>>(8-take))
		pos += take
		left -= take
	}
	return accum, nil
}

// ReadBits returns the next n bits as for PeekBits, advancing the cursor
// past them. On error the cursor is unchanged.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadSignedBits reads n bits and sign-extends the result, i.e. the first
// of the n bits is interpreted as the sign bit of an n-bit two's complement
// value.
func (r *Reader) ReadSignedBits(n uint) (int32, error) {
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	if n == 0 || n == 32 {
		return int32(v), nil
	}
	if v&(1<<(n-1)) != 0 {
		v |= ^uint32(0) << n
	}
	return int32(v), nil
}

// ReadBool reads a single bit, reporting whether it is set.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// ReadUint8 reads the next eight bits.
func (r *Reader) ReadUint8() (uint8, error) {
	v, err := r.ReadBits(8)
	return uint8(v), err
}

// SkipBits advances the cursor by n bits, failing with io.ErrUnexpectedEOF
// if fewer than n bits remain.
func (r *Reader) SkipBits(n uint) error {
	if r.BitsRemaining() < n {
		return io.ErrUnexpectedEOF
	}
	r.pos += n
	return nil
}

// Checkpoint is a saved cursor position that may be restored with Rollback.
type Checkpoint uint

// Checkpoint saves the current cursor position.
func (r *Reader) Checkpoint() Checkpoint {
	return Checkpoint(r.pos)
}

// Rollback restores a position previously saved with Checkpoint.
func (r *Reader) Rollback(cp Checkpoint) {
	r.pos = uint(cp)
}

// Transaction runs f, rolling the cursor back to its position at the call
// if f returns an error. A successful f leaves the cursor wherever f moved
// it.
func (r *Reader) Transaction(f func(*Reader) error) error {
	cp := r.Checkpoint()
	if err := f(r); err != nil {
		r.Rollback(cp)
		return err
	}
	return nil
}

// LookAhead runs f and unconditionally rolls the cursor back afterwards,
// returning f's error. It is used for probing upcoming syntax without
// consuming it.
func (r *Reader) LookAhead(f func(*Reader) error) error {
	cp := r.Checkpoint()
	err := f(r)
	r.Rollback(cp)
	return err
}
