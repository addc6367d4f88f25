// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

import (
	"bytes"
	"testing"
)

func TestWindowAppendAndWrap(t *testing.T) {
	w := newWindow(8)
	w.appendSlice([]byte("ABCDEF"))
	if w.pos != 6 {
		t.Fatalf("pos = %d, want 6", w.pos)
	}

	w.appendSlice([]byte("GHIJ")) // wraps: 10 bytes into an 8-byte ring
	if w.pos != 2 {
		t.Fatalf("pos after wrap = %d, want 2", w.pos)
	}

	got := make([]byte, 8)
	w.readInto(got, 0)
	if want := "IJCDEFGH"; string(got) != want {
		t.Fatalf("window contents after wrap = %q, want %q", got, want)
	}
}

func TestWindowCopyMatchNonOverlapping(t *testing.T) {
	w := newWindow(16)
	w.appendSlice([]byte("abcdefgh"))

	dst := make([]byte, 4)
	if err := w.copyMatch(dst, 8, 4); err != nil {
		t.Fatalf("copyMatch: %v", err)
	}
	if !bytes.Equal(dst, []byte("abcd")) {
		t.Fatalf("dst = %q, want %q", dst, "abcd")
	}
}

func TestWindowCopyMatchSelfReplicating(t *testing.T) {
	w := newWindow(16)
	w.appendSlice([]byte("A"))

	dst := make([]byte, 9)
	if err := w.copyMatch(dst, 1, 9); err != nil {
		t.Fatalf("copyMatch: %v", err)
	}
	if !bytes.Equal(dst, bytes.Repeat([]byte("A"), 9)) {
		t.Fatalf("dst = %q, want 9 A's", dst)
	}
}

func TestWindowCopyMatchExactlyTwoCycles(t *testing.T) {
	w := newWindow(16)
	w.appendSlice([]byte("XY"))

	dst := make([]byte, 4) // length == 2*distance
	if err := w.copyMatch(dst, 2, 4); err != nil {
		t.Fatalf("copyMatch: %v", err)
	}
	if !bytes.Equal(dst, []byte("XYXY")) {
		t.Fatalf("dst = %q, want %q", dst, "XYXY")
	}
}

func TestWindowCopyMatchMinimalOverlap(t *testing.T) {
	w := newWindow(16)
	w.appendSlice([]byte("abc"))

	dst := make([]byte, 4) // length == distance + 1
	if err := w.copyMatch(dst, 3, 4); err != nil {
		t.Fatalf("copyMatch: %v", err)
	}
	if !bytes.Equal(dst, []byte("abca")) {
		t.Fatalf("dst = %q, want %q", dst, "abca")
	}
}

func TestWindowCopyMatchDistanceExceedsHistory(t *testing.T) {
	w := newWindow(16)
	w.appendSlice([]byte("ab"))

	dst := make([]byte, 3)
	if err := w.copyMatch(dst, 5, 3); err == nil {
		t.Fatal("expected error for distance exceeding produced history")
	}
}

func TestWindowHistorySaturatesAtCapacity(t *testing.T) {
	w := newWindow(4)
	w.appendSlice([]byte("abcdefgh")) // 8 bytes into a 4-byte window

	if got := w.history(); got != 4 {
		t.Fatalf("history() = %d, want 4 (saturated at capacity)", got)
	}
}
