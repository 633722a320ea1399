package entity

import "fmt"

// DecodeError reports a stored value that does not map to any known enum member.
type DecodeError struct {
	Field string
	Value string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Field, e.Value)
}
