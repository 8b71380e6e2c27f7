package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	SequenceType
	MappingType
	UnsupportedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:      "Scalar",
		SequenceType:    "Sequence",
		MappingType:     "Mapping",
		UnsupportedType: "Unsupported",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar":      ScalarType,
		"Sequence":    SequenceType,
		"Mapping":     MappingType,
		"Unsupported": UnsupportedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		SequenceType,
		MappingType,
		UnsupportedType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case SequenceType, MappingType:
		return false
	default:
		return true
	}
}
