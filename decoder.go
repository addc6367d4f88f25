// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

import (
	"bufio"
	"io"
)

// Reader is a streaming LZO1X decompressor. It implements io.Reader: the
// caller pulls decompressed bytes, and Reader blocks on the underlying
// source exactly as far as the source itself blocks. A Reader is not
// safe for concurrent use.
type Reader struct {
	br  *bufio.Reader
	win *window
	pnd *pendingBuf

	state           lzoState
	instruction     byte
	haveInstruction bool
	ended           bool
	err             error

	inPos, outPos int64

	tail [2]byte // scratch for the (s, d_hi) tail bytes
}

// NewReader constructs a Reader over r, positioned at the first byte of a
// raw LZO1X stream. It eagerly consumes the stream preamble: a leading
// literal run, if any, and its terminating opcode validity check. It does
// not decode past the preamble.
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}

	cfg := defaultReaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.windowSize <= 0 || cfg.windowSize&(cfg.windowSize-1) != 0 || cfg.windowSize < maxDistance {
		return nil, ErrUnsupported
	}

	d := &Reader{
		br:  bufio.NewReaderSize(r, 4096),
		win: newWindow(cfg.windowSize),
		pnd: newPendingBuf(),
	}
	if err := d.readPreamble(); err != nil {
		return nil, err
	}
	return d, nil
}

// Read implements io.Reader. It returns 0, io.EOF once the end-of-stream
// marker has been consumed and any staged output drained; repeated calls
// with a zero-length p are a no-op.
func (d *Reader) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	if !d.pnd.empty() {
		return d.pnd.drain(p), nil
	}
	if d.ended {
		return 0, io.EOF
	}

	for d.pnd.empty() && !d.ended {
		if err := d.decodeStep(); err != nil {
			d.err = err
			return 0, err
		}
	}

	if d.pnd.empty() {
		return 0, io.EOF
	}
	return d.pnd.drain(p), nil
}

// BytesRead reports how many compressed bytes have been consumed from the
// source so far.
func (d *Reader) BytesRead() int64 { return d.inPos }

// BytesWritten reports how many decompressed bytes have been produced so
// far (including bytes still sitting in the internal pending buffer,
// not yet returned by Read).
func (d *Reader) BytesWritten() int64 { return d.outPos }

// readPreamble handles the first byte of the stream, which is special:
// a value above 17 is the length of a leading literal run (offset by 17)
// with no preceding opcode; 16 and 17 are invalid; anything else is
// itself the first instruction.
func (d *Reader) readPreamble() error {
	b0, err := d.readByte()
	if err != nil {
		return err
	}

	switch {
	case b0 > 17:
		n := int(b0) - 17
		if err := d.copyLiteral(n); err != nil {
			return err
		}
		d.state = stateLargeCopy

		inst, err := d.readByte()
		if err != nil {
			return err
		}
		if inst < 16 {
			return wrapf(ErrCorruptStream, d.inPos, d.outPos, "second opcode %#02x after preamble literal run must be >= 16", inst)
		}
		d.instruction, d.haveInstruction = inst, true

	case b0 == 16 || b0 == 17:
		return wrapf(ErrCorruptStream, d.inPos, d.outPos, "first opcode %#02x is invalid", b0)

	default:
		d.instruction, d.haveInstruction = b0, true
	}
	return nil
}

// decodeStep executes exactly one LZO1X instruction: either a literal-only
// run (class [0,15] under stateZeroCopy) or a back-reference with its
// trailing literals, or it observes the end-of-stream marker and seals
// the decoder. It stages the produced bytes in d.pnd.
func (d *Reader) decodeStep() error {
	inst, err := d.nextInstruction()
	if err != nil {
		return err
	}

	switch {
	case inst >= markerM2: // [64,255]: 01LDDDSS / 1LLDDDSS
		length := int(inst>>5) + 1
		distance, s, err := d.readShortDistance(inst)
		if err != nil {
			return err
		}
		return d.execBackRef(distance, length, s)

	case inst >= markerM3: // [32,63]: 001LLLLL
		length := int(inst&0x1f) + 2
		if length == 2 {
			ext, err := d.readExtendedLength()
			if err != nil {
				return err
			}
			length += 31 + ext
		}
		x, s, err := d.readTail16()
		if err != nil {
			return err
		}
		distance := (x >> 2) + 1
		return d.execBackRef(distance, length, s)

	case inst >= markerM4: // [16,31]: 0001HLLL, or end-of-stream
		length := int(inst&0x07) + 2
		if length == 2 {
			ext, err := d.readExtendedLength()
			if err != nil {
				return err
			}
			length += 7 + ext
		}
		x, s, err := d.readTail16()
		if err != nil {
			return err
		}
		distance := eosDistance + (((int(inst) & 0x08) << 11) | (x >> 2))
		if distance == eosDistance {
			if length != 3 {
				return wrapf(ErrCorruptStream, d.inPos, d.outPos, "end-of-stream marker has length %d, want 3", length)
			}
			d.ended = true
			return nil
		}
		return d.execBackRef(distance, length, s)

	default: // [0,15]: 0000 LLLL, state-dependent
		return d.decodeClassLow(inst)
	}
}

// decodeClassLow handles opcodes in [0,15], whose meaning depends on the
// carried state rather than being fixed like the other classes.
func (d *Reader) decodeClassLow(inst byte) error {
	switch d.state {
	case stateZeroCopy:
		length := int(inst) + 3
		if inst == 0 {
			ext, err := d.readExtendedLength()
			if err != nil {
				return err
			}
			length = 3 + 15 + ext
		}
		if err := d.copyLiteral(length); err != nil {
			return err
		}
		d.state = stateLargeCopy
		return nil

	case stateLargeCopy:
		h, err := d.readByte()
		if err != nil {
			return err
		}
		distance := (int(h) << 2) + ((int(inst) >> 2) & 3) + 2049
		return d.execBackRef(distance, 3, int(inst)&3)

	default: // stateSmallCopy1/2/3
		h, err := d.readByte()
		if err != nil {
			return err
		}
		distance := (int(h) << 2) + ((int(inst) >> 2) & 3) + 1
		return d.execBackRef(distance, 2, int(inst)&3)
	}
}

// readShortDistance reads the single tail byte H used by opcode classes
// [64,255] and returns (distance, trailing-literal count S). The [0,15]
// forms read their own H in decodeClassLow, since their distance formula
// differs.
func (d *Reader) readShortDistance(inst byte) (distance, s int, err error) {
	h, err := d.readByte()
	if err != nil {
		return 0, 0, err
	}
	distance = (int(h) << 3) + ((int(inst) >> 2) & 7) + 1
	s = int(inst) & 3
	return distance, s, nil
}

// readTail16 reads the little-endian 16-bit tail used by opcode classes
// [16,31] and [32,63] (the first byte on the wire is the low byte of the
// word) and returns the assembled word plus the trailing-literal count S
// carried in its low two bits. Each caller derives its own distance
// formula from x, since the two classes compute distance differently.
func (d *Reader) readTail16() (x, s int, err error) {
	if _, err := io.ReadFull(d.br, d.tail[:2]); err != nil {
		return 0, 0, d.ioErr(err)
	}
	d.inPos += 2
	x = (int(d.tail[1]) << 8) | int(d.tail[0])
	s = int(d.tail[0]) & 3
	return x, s, nil
}

// execBackRef executes a back-reference: copy length bytes from the
// window, then s trailing literal bytes from input, updating the carried
// state from s.
func (d *Reader) execBackRef(distance, length, s int) error {
	buf := d.pnd.grow(length + s)
	if err := d.win.copyMatch(buf[:length], distance, length); err != nil {
		return wrapf(err, d.inPos, d.outPos, "back-reference distance=%d length=%d exceeds produced output", distance, length)
	}
	d.outPos += int64(length)

	if s > 0 {
		if _, err := io.ReadFull(d.br, buf[length:length+s]); err != nil {
			return d.ioErr(err)
		}
		d.inPos += int64(s)
		d.win.appendSlice(buf[length : length+s])
		d.outPos += int64(s)
	}
	d.pnd.commit(length + s)
	d.state = fromTrailingLiterals(s)
	return nil
}

// copyLiteral reads n literal bytes from the source directly into the
// window and the pending output buffer.
func (d *Reader) copyLiteral(n int) error {
	if n == 0 {
		return nil
	}
	buf := d.pnd.grow(n)
	if _, err := io.ReadFull(d.br, buf); err != nil {
		return d.ioErr(err)
	}
	d.inPos += int64(n)
	d.win.appendSlice(buf)
	d.outPos += int64(n)
	d.pnd.commit(n)
	return nil
}

// nextInstruction returns the opcode to interpret: the one cached by the
// preamble on the very first call, or a freshly read byte on every call
// after that.
func (d *Reader) nextInstruction() (byte, error) {
	if d.haveInstruction {
		d.haveInstruction = false
		return d.instruction, nil
	}
	return d.readByte()
}

func (d *Reader) readByte() (byte, error) {
	b, err := d.br.ReadByte()
	if err != nil {
		return 0, d.ioErr(err)
	}
	d.inPos++
	return b, nil
}

// readExtendedLength reads an extended length field: zero bytes
// contribute 255 each, the first non-zero byte terminates and contributes
// its own value.
func (d *Reader) readExtendedLength() (int, error) {
	total := 0
	chunks := 0
	for {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			total += int(b)
			if total > maxExtendedLength {
				return 0, wrapf(ErrCorruptStream, d.inPos, d.outPos, "extended length overflow")
			}
			return total, nil
		}
		total += 255
		chunks++
		if chunks > maxZeroExtensionChunks || total > maxExtendedLength {
			return 0, wrapf(ErrCorruptStream, d.inPos, d.outPos, "extended length overflow")
		}
	}
}

// ioErr maps an I/O error from the underlying source: any source EOF
// while decoding is fatal, since a clean stream always ends with the
// explicit end-of-stream marker rather than source exhaustion.
func (d *Reader) ioErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return wrapf(ErrUnexpectedEOF, d.inPos, d.outPos, "source ended mid-instruction")
	}
	return err
}
