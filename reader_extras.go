// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

import "io"

// Reset reinitializes d to decompress a new LZO1X stream read from r,
// reusing d's window and pending buffers. This avoids allocating a fresh
// window per stream when decoding many short streams back-to-back,
// mirroring the flate.Reader/gzip.Reader Reset convention from the
// standard library.
func (d *Reader) Reset(r io.Reader) error {
	if r == nil {
		return ErrInvalidArgument
	}

	d.br.Reset(r)
	d.win.reset()
	d.pnd.reset()
	d.state = stateZeroCopy
	d.instruction = 0
	d.haveInstruction = false
	d.ended = false
	d.err = nil
	d.inPos, d.outPos = 0, 0

	return d.readPreamble()
}

// WriteTo implements io.WriterTo, decoding directly into w without
// requiring the caller to supply its own buffer. It reports the number of
// decompressed bytes written before returning.
func (d *Reader) WriteTo(w io.Writer) (int64, error) {
	var written int64
	buf := make([]byte, 32*1024)

	for {
		n, err := d.Read(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}
