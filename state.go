// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

// lzoState is the carried literal-run-length class that determines how
// the next [0,15] opcode is interpreted. It is int-valued rather than a
// named enum with five distinct constructors because the three
// SmallCopyN variants behave identically wherever the state is consulted:
// only whether the state is 0 (ZeroCopy), 1..3 (SmallCopy1..3), or 4
// (LargeCopy) ever matters.
type lzoState int

const (
	stateZeroCopy   lzoState = 0
	stateSmallCopy1 lzoState = 1
	stateSmallCopy2 lzoState = 2
	stateSmallCopy3 lzoState = 3
	stateLargeCopy  lzoState = 4
)

// fromTrailingLiterals maps the two-bit trailing-literal count S onto the
// state it produces for the next opcode.
func fromTrailingLiterals(s int) lzoState {
	return lzoState(s)
}
