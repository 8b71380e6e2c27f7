// Package gomap converts between plain Go values and ir.Node trees.
package gomap

import (
	"fmt"

	"github.com/signadot/charfix/ir"
)

// FromGo converts a Go value to an IR node. Strings become internal
// scalars, []byte external scalars, []any sequences and map[string]any
// mappings (sorted keys). Anything else becomes an Unsupported node
// tagged with the value's dynamic type and retaining the value itself,
// so ToGo returns it unchanged.
func FromGo(v any) *ir.Node {
	switch vv := v.(type) {
	case string:
		return ir.FromText(vv)
	case []byte:
		return ir.FromBytes(vv)
	case []any:
		vals := make([]*ir.Node, len(vv))
		for i, e := range vv {
			vals[i] = FromGo(e)
		}
		return ir.FromSlice(vals)
	case map[string]any:
		nMap := make(map[string]*ir.Node, len(vv))
		for k, e := range vv {
			nMap[k] = FromGo(e)
		}
		return ir.FromMap(nMap)
	default:
		return ir.UnsupportedVal(fmt.Sprintf("%T", v), v)
	}
}

// ToGo converts an IR node back to a Go value. Internal scalars become
// strings, external scalars []byte. Unsupported nodes yield their
// original value unmodified.
func ToGo(n *ir.Node) any {
	switch n.Type {
	case ir.ScalarType:
		if n.IsExternal() {
			return n.Bytes
		}
		return n.Text
	case ir.SequenceType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToGo(v)
		}
		return res
	case ir.MappingType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k] = ToGo(n.Values[i])
		}
		return res
	default:
		return n.Val
	}
}
