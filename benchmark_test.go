// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

import (
	"bytes"
	"io"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzo benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

// BenchmarkRead measures Reader.Read throughput across representative
// payload shapes, all encoded as a single literal run since this module
// has no compressor to produce back-reference-heavy streams.
func BenchmarkRead(b *testing.B) {
	buf := make([]byte, 32*1024)
	for inputName, inputData := range benchmarkInputSets() {
		stream := encodeLiteralStream(inputData)
		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				r, err := NewReader(bytes.NewReader(stream))
				if err != nil {
					b.Fatalf("NewReader failed: %v", err)
				}
				for {
					_, err := r.Read(buf)
					if err == io.EOF {
						break
					}
					if err != nil {
						b.Fatalf("Read failed: %v", err)
					}
				}
			}
		})
	}
}

// BenchmarkWriteTo measures the io.WriterTo fast path against the same
// payload shapes as BenchmarkRead.
func BenchmarkWriteTo(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		stream := encodeLiteralStream(inputData)
		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				r, err := NewReader(bytes.NewReader(stream))
				if err != nil {
					b.Fatalf("NewReader failed: %v", err)
				}
				if _, err := r.WriteTo(io.Discard); err != nil {
					b.Fatalf("WriteTo failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkResetReuse(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	stream := encodeLiteralStream(inputData)

	r, err := NewReader(bytes.NewReader(stream))
	if err != nil {
		b.Fatalf("NewReader failed: %v", err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := r.Reset(bytes.NewReader(stream)); err != nil {
			b.Fatalf("Reset failed: %v", err)
		}
		if _, err := r.WriteTo(io.Discard); err != nil {
			b.Fatalf("WriteTo failed: %v", err)
		}
	}
}
