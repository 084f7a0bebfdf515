// Package store implements the durable binary log codec of spec.md §4.J:
// a one-shot polyhedron header, an append-only certificate log of
// eliminated 3-boxes, an append-only residual log (SPEC_FULL §3 item 3),
// and an atomically-rewritten checkpoint of the outer queue's pending
// 3-boxes.
//
// Every record is little-endian and fixed-width, written with
// encoding/binary directly against an io.Writer/io.Reader — the retrieval
// pack carries no Go binary-log library whose record shape fits this
// schema (the closest candidates are either general-purpose serialization
// frameworks with their own self-describing wire format, which would
// replace spec.md §4.J's schema rather than implement it, or are
// unrelated domains entirely), so this package is built directly on the
// standard library by necessity rather than preference.
//
// Wire-format note: spec.md §3/§4.J name the packed dyadic range as
// "range16" (a uint16). boxindex.MaxDepth is 16, and a Range at depth 16
// packs to `1<<16 | bits`, which does not fit in 16 bits (spec.md §9 notes
// the depth cap itself is stated only approximately, "D_max ~ 16"). This
// package resolves that inconsistency (an Open Question per spec.md §9)
// in favor of correctness over the literal bit width: every packed range
// on the wire is a full uint32 (boxindex.Range.Pack's native width),
// capable of representing every depth up to MaxDepth without truncation.
package store
