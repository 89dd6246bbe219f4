package models

// FlowState is the conversation's current stage in the
// search -> select -> book progression. States only move forward.
type FlowState int

const (
	StateAwaitingSearch FlowState = iota
	StateAwaitingSelection
	StateAwaitingTravelerInfo
	StateCompleted
)

func (s FlowState) String() string {
	switch s {
	case StateAwaitingSearch:
		return "awaiting_search"
	case StateAwaitingSelection:
		return "awaiting_selection"
	case StateAwaitingTravelerInfo:
		return "awaiting_traveler_info"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ConversationSession holds the per-conversation state between turns.
// Its lifecycle is owned entirely by the caller driving the turns.
type ConversationSession struct {
	SessionID string        `json:"sessionId"`
	State     FlowState     `json:"state"`
	Offers    []FlightOffer `json:"offers,omitempty"`   // retained batch from the last search, upstream order
	Selected  *FlightOffer  `json:"selected,omitempty"` // offer chosen from the retained batch
	BookingID string        `json:"bookingId,omitempty"`
}
