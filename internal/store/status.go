package store

// LoadingStatus tracks the most recent async action of a slice
type LoadingStatus int

const (
	Idle LoadingStatus = iota
	Loading
	Succeeded
	Failed
)

// String returns the status name
func (s LoadingStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultErrorMessage is stored when a failure carries no message from the server
const DefaultErrorMessage = "Connection error. Try again later!"
