// Package ir provides the intermediate representation (IR) for value trees
// subject to character-encoding normalization.
//
// # Overview
//
// A tree is made of ir.Node values. Nodes are a recursive tagged union:
// scalars (text or bytes), sequences (ordered), mappings (string keys,
// parallel Keys/Values slices) and an Unsupported variant for anything a
// traversal cannot transform. Keys of mappings are plain strings and are
// never transformed by any operation in this module.
//
// # Scalar Representations
//
// A scalar holds either the internal decoded text representation (Text) or
// the external UTF-8 byte representation (Bytes). Bytes non-nil selects the
// external representation; which interpretation a transform assumes is
// given by the direction of the operation, see the norm package.
//
// # Related Packages
//
//   - github.com/signadot/charfix/norm - direction-aware normalization
//   - github.com/signadot/charfix/repair - mixed-encoding repair
//   - github.com/signadot/charfix/gomap - Go values <-> IR
package ir
