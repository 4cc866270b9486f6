package session

// InvalidStateError reports an operation attempted against a session
// state that does not permit it. These are contract violations: the UI
// disables the corresponding actions, so a user should never see one.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return e.Op + ": " + e.Reason
}
