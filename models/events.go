package models

// PaymentCreatedEvent is published after a payment row is committed.
// Items carry the virtual items computed for the new period so
// downstream billing trackers do not have to recompute them.
type PaymentCreatedEvent struct {
	Payment Payment       `json:"payment"`
	Items   []PaymentItem `json:"items"`
}
