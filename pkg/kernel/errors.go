package kernel

// ArgumentError reports a precondition violation raised by this package.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return "kernel: " + e.Op + ": " + e.Msg
}

func invalidArg(op, msg string) {
	panic(&ArgumentError{Op: op, Msg: msg})
}
