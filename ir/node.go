package ir

import (
	"maps"
	"slices"
)

// Node is one value in a tree of scalars, sequences and mappings.
//
// A scalar carries its payload in either Text or Bytes: Bytes non-nil means
// the scalar holds the external UTF-8 byte representation, otherwise Text
// holds decoded text. Mappings keep Keys and Values as parallel slices;
// keys are plain strings and are never subject to transformation.
type Node struct {
	Type Type

	Text  string
	Bytes []byte

	Keys   []string
	Values []*Node

	// Tag carries a diagnostic label for UnsupportedType nodes,
	// typically the dynamic type of the original Go value.
	Tag string

	// Val carries the original value of an UnsupportedType node so
	// boundaries can pass it through unmodified. It is opaque to every
	// transformation here.
	Val any
}

func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

// IsExternal reports whether a scalar holds the external byte
// representation.
func (n *Node) IsExternal() bool {
	return n.Bytes != nil
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst and returns dst. No container or byte
// slice is shared between the two trees at any depth.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Tag = n.Tag
	// Val is opaque, so the copy is shallow
	dst.Val = n.Val
	dst.Text = n.Text
	if n.Bytes != nil {
		dst.Bytes = make([]byte, len(n.Bytes))
		copy(dst.Bytes, n.Bytes)
	}
	if n.Keys != nil {
		dst.Keys = make([]string, len(n.Keys))
		copy(dst.Keys, n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, nv := range n.Values {
			dstI := &Node{}
			nv.CloneTo(dstI)
			dst.Values[i] = dstI
		}
	}
	return dst
}

func FromText(v string) *Node {
	return &Node{
		Type: ScalarType,
		Text: v,
	}
}

func FromBytes(d []byte) *Node {
	if d == nil {
		d = []byte{}
	}
	return &Node{
		Type:  ScalarType,
		Bytes: d,
	}
}

func FromSlice(nSlice []*Node) *Node {
	res := &Node{
		Type: SequenceType,
	}
	res.Values = make([]*Node, len(nSlice))
	copy(res.Values, nSlice)
	return res
}

// FromMap builds a mapping node with keys in sorted order.
func FromMap(nMap map[string]*Node) *Node {
	res := &Node{Type: MappingType}
	res.Keys = slices.Sorted(maps.Keys(nMap))
	res.Values = make([]*Node, len(res.Keys))
	for i, key := range res.Keys {
		res.Values[i] = nMap[key]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromPairs builds a mapping node preserving the given key order.
func FromPairs(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Keys = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func Unsupported(tag string) *Node {
	return &Node{
		Type: UnsupportedType,
		Tag:  tag,
	}
}

// UnsupportedVal builds an Unsupported node that retains the original
// value for pass-through at conversion boundaries.
func UnsupportedVal(tag string, v any) *Node {
	return &Node{
		Type: UnsupportedType,
		Tag:  tag,
		Val:  v,
	}
}

func Get(n *Node, key string) *Node {
	if n.Type != MappingType {
		return nil
	}
	for i := range n.Keys {
		if n.Keys[i] == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, nn := range n.Values {
			if err := nn.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
