package editdist

import "fmt"

// ArgumentError reports a programmer error: a malformed argument that the
// package refuses to silently repair. Callers that hit this have a bug,
// not bad input data.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("editdist: %s: %s", e.Op, e.Msg)
}

func invalidArg(op, msg string) {
	panic(&ArgumentError{Op: op, Msg: msg})
}
