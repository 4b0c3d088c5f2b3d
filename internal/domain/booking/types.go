package booking

// Status is the booking lifecycle state. Creation is the only way into
// StatusPending; StatusCancelled and StatusCompleted are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking occupies its slot for conflict
// purposes. Only active bookings block other bookings.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo encodes the monotonic state machine:
// pending -> {confirmed, cancelled}; confirmed -> {completed, cancelled}.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// CancelReason records why a booking was cancelled. ReasonExpired marks sweeps
// of lapsed pending holds.
type CancelReason string

const (
	ReasonExpired          CancelReason = "EXPIRED"
	ReasonCustomerRequest  CancelReason = "CUSTOMER_REQUEST"
	ReasonVenueUnavailable CancelReason = "VENUE_UNAVAILABLE"
)

func (r CancelReason) String() string {
	return string(r)
}
