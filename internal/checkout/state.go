package checkout

// State is the checkout progression. Transitions are strictly sequential:
// each network step is awaited before the next one is issued, and nothing is
// retried automatically.
type State int

const (
	StateIdle State = iota
	StateAwaitingAuthorization
	StateConfirmingPayment
	StateSubmittingOrder
	StateSucceeded
	// StateOrderSubmissionFailed is the explicit terminal state for a payment
	// that succeeded while order persistence failed. The confirmation is
	// retained so the order can be resubmitted without charging again.
	StateOrderSubmissionFailed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAuthorization:
		return "awaiting_authorization"
	case StateConfirmingPayment:
		return "confirming_payment"
	case StateSubmittingOrder:
		return "submitting_order"
	case StateSucceeded:
		return "succeeded"
	case StateOrderSubmissionFailed:
		return "order_submission_failed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
