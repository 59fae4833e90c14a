package lifecycle

type State int

const (
	Idle State = iota
	Validating
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "completed(success)"
	case Failed:
		return "completed(failure)"
	default:
		return "unknown"
	}
}

// Busy reports whether an attempt is in flight.
func (s State) Busy() bool {
	return s == Validating || s == Submitting
}

// Completed reports whether s is terminal for an attempt.
func (s State) Completed() bool {
	return s == Succeeded || s == Failed
}
