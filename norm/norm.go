package norm

import (
	"fmt"

	"github.com/signadot/charfix/debug"
	"github.com/signadot/charfix/ir"
	"github.com/signadot/charfix/repair"
)

// Diag reports a node traversal could not transform. It is non-fatal: the
// node is left unmodified and the rest of the tree is still processed.
type Diag struct {
	Type ir.Type
	Tag  string
}

func (d Diag) String() string {
	if d.Tag == "" {
		return fmt.Sprintf("unsupported value kind %s", d.Type)
	}
	return fmt.Sprintf("unsupported value kind %s (%s)", d.Type, d.Tag)
}

// Normalize applies the direction conversion, and unless skipped the
// mixed-encoding repair, to every scalar leaf reachable through nested
// sequences and mappings, mutating the tree in place. Mapping keys are
// passed over untouched. It returns the node it was given, enabling
// chaining.
//
// The direction is validated once, before traversal: on ErrInvalidDirection
// no part of the tree is touched. The tree must be acyclic; no cycle
// detection is performed.
func Normalize(dir Direction, node *ir.Node, opts ...Option) (*ir.Node, error) {
	o := &normOpts{}
	for _, f := range opts {
		f(o)
	}
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	walk(dir, node, o)
	return node, nil
}

// NormalizeCloned deep-copies node, normalizes the copy and returns it.
// The input tree is left byte-for-byte unchanged, sharing no container or
// byte slice with the result.
func NormalizeCloned(dir Direction, node *ir.Node, opts ...Option) (*ir.Node, error) {
	o := &normOpts{}
	for _, f := range opts {
		f(o)
	}
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	res := node.Clone()
	walk(dir, res, o)
	return res, nil
}

func walk(dir Direction, n *ir.Node, o *normOpts) {
	switch n.Type {
	case ir.ScalarType:
		normalizeScalar(dir, n, o)
	case ir.SequenceType, ir.MappingType:
		for _, v := range n.Values {
			walk(dir, v, o)
		}
	default:
		d := Diag{Type: n.Type, Tag: n.Tag}
		if debug.Walk() {
			debug.LogAny(d.String())
		}
		if o.diags != nil {
			*o.diags = append(*o.diags, d)
		}
	}
}

// normalizeScalar repairs the scalar unless skipped, then converts its
// representation per the direction. Both steps are idempotent.
func normalizeScalar(dir Direction, n *ir.Node, o *normOpts) {
	if !o.skipRepair {
		if n.IsExternal() {
			fixed := repair.Repair(n.Bytes)
			if debug.Repair() && fixed != string(n.Bytes) {
				debug.LogAny(map[string]string{"repaired": fixed})
			}
			n.Text = fixed
			n.Bytes = nil
		} else {
			n.Text = repair.RepairString(n.Text)
		}
	}
	switch dir {
	case ToInternal:
		if n.IsExternal() {
			n.Text = string(n.Bytes)
			n.Bytes = nil
		}
	case ToExternal:
		if !n.IsExternal() {
			n.Bytes = []byte(n.Text)
			n.Text = ""
		}
	}
}
