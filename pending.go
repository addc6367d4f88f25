// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

// pendingBuf stages bytes an instruction produced that did not fit in the
// caller's Read buffer. It is a buffer separate from the window rather
// than a view over it: the window's capacity is fixed by the wire format
// (windowCapacity), while an instruction's literal run can legitimately
// exceed that.
//
// buf is preallocated to instrMaxOutput, which covers the short-form
// back-references (opcode classes [0,15] and [64,255]) with no further
// allocation; a longer [16,63] back-reference or a longer literal run
// grows it, and the growth persists for reuse by later instructions.
type pendingBuf struct {
	buf   []byte
	rdPos int
	wrPos int
}

// instrMaxOutput is the maximum output of a single short-form
// back-reference instruction: an 8-byte [128,255] match plus 3 trailing
// literals. pendingBuf grows past it for [16,63] back-references with
// longer lengths and for literal runs instead of assuming neither occurs.
const instrMaxOutput = 8 + 3

func newPendingBuf() *pendingBuf {
	return &pendingBuf{buf: make([]byte, 0, instrMaxOutput)}
}

func (p *pendingBuf) reset() {
	p.buf = p.buf[:0]
	p.rdPos = 0
	p.wrPos = 0
}

func (p *pendingBuf) empty() bool { return p.rdPos >= p.wrPos }

// grow returns a slice of length n at the write cursor, extending buf if
// needed, without advancing wrPos (the caller fills it, then calls
// commit).
func (p *pendingBuf) grow(n int) []byte {
	if p.rdPos == p.wrPos {
		p.buf = p.buf[:0]
		p.rdPos, p.wrPos = 0, 0
	}
	need := p.wrPos + n
	if need > cap(p.buf) {
		grown := make([]byte, len(p.buf), need)
		copy(grown, p.buf)
		p.buf = grown
	}
	p.buf = p.buf[:need]
	return p.buf[p.wrPos:need]
}

func (p *pendingBuf) commit(n int) { p.wrPos += n }

// drain copies as many pending bytes as fit into dst and reports how many
// were copied. Repeated calls with a zero-length dst are a no-op.
func (p *pendingBuf) drain(dst []byte) int {
	n := copy(dst, p.buf[p.rdPos:p.wrPos])
	p.rdPos += n
	if p.rdPos == p.wrPos {
		p.buf = p.buf[:0]
		p.rdPos, p.wrPos = 0, 0
	}
	return n
}
