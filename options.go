// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

// ReaderOption configures a Reader at construction time. The streaming
// constructor takes a source rather than a pre-sized output buffer, and
// window size is not part of the LZO1X wire format, so a functional
// option fits better than a single options struct.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	windowSize int
}

func defaultReaderConfig() readerConfig {
	return readerConfig{windowSize: windowCapacity}
}

// withWindowSize overrides the history window's backing capacity.
// Unexported: window size is not part of the wire format, so it is not
// safe to expose publicly (a caller could pick a size smaller than
// maxDistance and silently corrupt otherwise-valid streams). NewReader
// rejects a size that is not a power of two or is below maxDistance with
// ErrUnsupported, so the only size it accepts is windowCapacity or larger.
func withWindowSize(n int) ReaderOption {
	return func(c *readerConfig) { c.windowSize = n }
}
