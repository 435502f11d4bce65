package domain

import "time"

// JobStatus represents the lifecycle state of a job.
type JobStatus string

const (
	JobOpen      JobStatus = "open"
	JobAssigned  JobStatus = "assigned"
	JobCompleted JobStatus = "completed"
)

// jobTransitions defines the allowed state machine transitions. Transitions
// only move forward; there is no path back to open once a job is assigned.
var jobTransitions = map[JobStatus][]JobStatus{
	JobOpen:     {JobAssigned},
	JobAssigned: {JobCompleted},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Job is a work item posted by a client. ClientID is immutable after creation.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	ClientID    string    `json:"client_id"`
	Status      JobStatus `json:"status"`
	// AcceptedProposalID records which proposal won the job, set atomically
	// with the open→assigned transition.
	AcceptedProposalID string    `json:"accepted_proposal_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
