package ws

import (
	"encoding/json"
	"time"
)

const EventMatchingCompleted = "matching_completed"

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

type MatchingCompletedPayload struct {
	ProjectID        string  `json:"project_id"`
	CandidatesRanked int     `json:"candidates_ranked"`
	ProcessingTimeMS float64 `json:"processing_time_ms"`
}

// NotifyMatchingCompleted broadcasts a run-completion event to every
// connected client. Best effort, marshal failures are swallowed.
func (h *Hub) NotifyMatchingCompleted(p MatchingCompletedPayload) {
	if h == nil {
		return
	}
	b, err := json.Marshal(Event{
		Type:      EventMatchingCompleted,
		Timestamp: time.Now().UTC(),
		Payload:   p,
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}
