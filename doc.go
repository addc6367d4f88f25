// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

/*
Package lzo1x implements a streaming decompressor for the raw LZO1X
bitstream format (kernel.org's LZO1X, decompress-only, no lzop container
framing).

The opcode space is split into five classes keyed by the leading byte
(0..15, 16..31, 32..63, 64..127, 128..255). The low class is interpreted
differently depending on the literal-run length the previous instruction
produced. Back-references may overlap their own
output (length > distance), which this decoder resolves as a
self-replicating copy through its internal history window rather than a
single bulk memory move.

Reader implements io.Reader, so it composes with anything that already
consumes a byte stream:

	r, err := lzo1x.NewReader(compressedStream)
	if err != nil {
		// invalid preamble: err wraps lzo1x.ErrCorruptStream
	}
	n, err := io.Copy(dst, r)

A Reader is single-use per source but reusable across sources with Reset,
and exposes BytesRead/BytesWritten for callers decoding back-to-back
blocks (e.g. an outer container framing this package deliberately does
not implement).
*/
package lzo1x
