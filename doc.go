// Package hat implements the hashed array tree: a growable, indexed
// sequence container where Append, Pop, Get, Set, and Len all run in
// non-amortized worst-case constant time, instead of the amortized
// doubling-reallocation strategy of a plain slice.
//
// Two variants are provided, sharing one rotor implementation:
//
//   - HatD, whose sub-blocks double in size (block i holds 2^i slots).
//   - HatC, whose sub-blocks are all the same size (2^S slots, S chosen
//     at construction).
//
// Both keep just two levels of indirection between an index and its
// element (directory lookup, then slot lookup), and never copy more than a constant number of directory entries per
// operation. See the package-level invariants documented on tree for
// how that's achieved.
package hat
