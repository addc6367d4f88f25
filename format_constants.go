// SPDX-License-Identifier: MIT
// Source: github.com/streamlzo/lzo1x

package lzo1x

// LZO1X opcode class boundaries (kernel.org LZO1X naming: M1..M4). Unlike
// M2/M3/M4, M1's shape is not fixed: its meaning depends on the state
// carried from the previous instruction.
const (
	markerM1 = 0  // [0,15]:   0000 LLLL, state-dependent
	markerM4 = 16 // [16,31]:  0001 HLLL, distance 16384..49151 or EOS
	markerM3 = 32 // [32,63]:  001L LLLL, distance 1..16384
	markerM2 = 64 // [64,255]: 01LD DDSS / 1LLD DDSS, distance 1..2048
)

// windowCapacity is the history window's backing capacity. The format's
// largest representable distance is 49151 (see maxDistance); rounding up
// to a power of two lets the window use a mask instead of a modulo on
// every append/lookup.
const windowCapacity = 1 << 16 // 65536

// maxDistance is the largest distance the LZO1X opcode set can encode:
// class [16,31] with the H bit set and a 14-bit tail of all ones.
const maxDistance = eosDistance + (1 << 14) + (0xFFFF >> 2) // 49151

// eosDistance is the encoded distance value in opcode class [16,31] that
// marks end-of-stream instead of a real back-reference.
const eosDistance = 16384

// maxZeroExtensionChunks bounds how many zero bytes an extended-length
// read may consume before the accumulated length would overflow the
// overflow guard in readExtendedLength.
const maxZeroExtensionChunks = (1<<31 - 1000) / 255

// maxExtendedLength is the overflow ceiling for extended-length reads.
const maxExtendedLength = 1<<31 - 1000
