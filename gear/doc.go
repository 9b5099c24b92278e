// Package gear — see gear.go for the Gear interface and container
// contracts, hash_gear.go for the hash-backed family, and array_gear.go for
// the sequence-backed (dense array / bit-packed) family used with
// nonnegative small-integer vertex ids.
//
// Complexity:
//
//   - HashGear: every container access is O(1) amortized map access.
//   - ArrayGear: every container access is O(1) slice access, no hashing.
package gear
