// Package norm applies direction-aware character-encoding normalization to
// ir.Node trees.
//
// # Usage
//
//	// decode external bytes to internal text, repairing mixed encodings
//	node, err := norm.Normalize(norm.ToInternal, node)
//
//	// encode without touching the input tree
//	out, err := norm.NormalizeCloned(norm.ToExternal, node, norm.SkipRepair(true))
//
// Normalize mutates the given tree in place and returns it; NormalizeCloned
// deep-copies first. Both validate the direction once, up front, and fail
// with ErrInvalidDirection before touching anything. Nodes of unsupported
// kinds are reported through the Diagnostics option and left unmodified;
// they never abort a pass.
//
// # Related Packages
//
//   - github.com/signadot/charfix/ir - the value tree
//   - github.com/signadot/charfix/repair - mixed-encoding repair of leaves
package norm
