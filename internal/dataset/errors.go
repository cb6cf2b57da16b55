package dataset

import "fmt"

// ValidationError reports a required field that is still missing (or
// invalid) after defaulting. The whole load is rejected, never
// partially accepted. Row is the 1-based data row, 0 for table-level
// problems.
type ValidationError struct {
	Field string
	Row   int
	Msg   string
}

func (e *ValidationError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "is null but required"
	}
	if e.Row == 0 {
		return fmt.Sprintf("field %q %s", e.Field, msg)
	}
	return fmt.Sprintf("row %d: field %q %s", e.Row, e.Field, msg)
}

// ParseError reports a value that should have parsed but did not, such
// as a malformed timestamp or date bound.
type ParseError struct {
	Field string
	Value string
	Row   int
}

func (e *ParseError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("cannot parse field %q value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("row %d: cannot parse field %q value %q", e.Row, e.Field, e.Value)
}
