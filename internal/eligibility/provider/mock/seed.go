package mock

import (
	"crypto/sha256"
	"encoding/binary"
)

// deriveSeed turns a (member ID, insurer) pair into a stable 32-bit seed.
// Identical inputs, byte for byte, always yield the identical seed; every
// derived field in a response flows from it, which is what makes repeated
// checks for the same member reproducible.
func deriveSeed(memberID, insuranceCompany string) uint32 {
	sum := sha256.Sum256([]byte(memberID + ":" + insuranceCompany))
	return binary.BigEndian.Uint32(sum[:4])
}

// pick selects an element deterministically from an ordered list. A distinct
// offset per field decorrelates fields that would otherwise move in lockstep
// as the seed changes.
func pick[T any](items []T, seed uint32, offset uint32) T {
	if len(items) == 0 {
		panic("mock: pick called with empty list")
	}
	// 64-bit sum so seeds near the top of the 32-bit range don't wrap.
	return items[(uint64(seed)+uint64(offset))%uint64(len(items))]
}
