package drill

import "fmt"

// State is the position of a Session in the drill lifecycle.
type State int

const (
	AwaitingQuestion State = iota
	BatchBoundaryCheck
	FetchingNextBatch
	Finalizing
	FetchingAnalysis
	Complete
)

func (s State) String() string {
	switch s {
	case AwaitingQuestion:
		return "awaiting_question"
	case BatchBoundaryCheck:
		return "batch_boundary_check"
	case FetchingNextBatch:
		return "fetching_next_batch"
	case Finalizing:
		return "finalizing"
	case FetchingAnalysis:
		return "fetching_analysis"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Observer is called on every transition while the session lock is held; it
// must not call back into the session.
type Observer func(from, to State)

type Option func(*Session)

func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}
