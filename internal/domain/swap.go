package domain

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
)

// swapTransitions lists every legal status change. Rejected and completed are terminal.
var swapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected},
	SwapStatusAccepted: {SwapStatusCompleted},
}

func (s SwapStatus) IsValid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}

	return false
}

func (s SwapStatus) IsTerminal() bool {
	return len(swapTransitions[s]) == 0
}

func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	for _, allowed := range swapTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsDecision reports whether s is a valid answer to a pending request.
func (s SwapStatus) IsDecision() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected
}
