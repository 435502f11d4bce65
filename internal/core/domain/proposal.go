package domain

import "time"

// ProposalStatus represents the lifecycle state of a proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

// proposalTransitions defines the allowed state machine transitions.
// Accepted and rejected are terminal.
var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalPending: {ProposalAccepted, ProposalRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, allowed := range proposalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Proposal is a freelancer's bid against a job. JobID and FreelancerID are
// immutable after creation.
type Proposal struct {
	ID           string         `json:"id"`
	JobID        string         `json:"job_id"`
	FreelancerID string         `json:"freelancer_id"`
	Amount       float64        `json:"amount"`
	Message      string         `json:"message,omitempty"`
	Status       ProposalStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}
