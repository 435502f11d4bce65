package domain

import "time"

// ActivityType identifies what kind of marketplace event occurred.
type ActivityType string

const (
	ActivityJobCreated        ActivityType = "job_created"
	ActivityProposalSubmitted ActivityType = "proposal_submitted"
	ActivityProposalAccepted  ActivityType = "proposal_accepted"
	ActivityProposalRejected  ActivityType = "proposal_rejected"
)

// ActivityEvent is an audit-trail entry recorded asynchronously after a
// successful mutation. Events for the same job are persisted in order.
type ActivityEvent struct {
	Type       ActivityType `json:"type"`
	JobID      string       `json:"job_id"`
	ProposalID string       `json:"proposal_id,omitempty"`
	ActorID    string       `json:"actor_id"`
	Timestamp  time.Time    `json:"timestamp"`
}
