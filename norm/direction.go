package norm

import (
	"errors"
	"fmt"
)

// Direction selects which conversion a normalization pass performs.
type Direction int

const (
	// ToInternal decodes external UTF-8 bytes to internal text.
	ToInternal Direction = iota
	// ToExternal encodes internal text to external UTF-8 bytes.
	ToExternal
)

// ErrInvalidDirection is returned before any traversal begins when a
// direction is not one of the two recognized values.
var ErrInvalidDirection = errors.New("invalid direction")

func (d Direction) String() string {
	switch d {
	case ToInternal:
		return "input"
	case ToExternal:
		return "output"
	}
	return "<unknown direction>"
}

func (d Direction) valid() bool {
	return d == ToInternal || d == ToExternal
}

// ParseDirection parses the external direction names "input" and "output".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "input":
		return ToInternal, nil
	case "output":
		return ToExternal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
