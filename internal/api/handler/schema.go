package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=client freelancer"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  userResponse `json:"user"`
}

// --- Jobs ---

type createJobRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget"      validate:"required,gt=0"`
}

type jobResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Budget             float64   `json:"budget"`
	ClientID           string    `json:"client_id"`
	ClientUsername     string    `json:"client_username,omitempty"`
	Status             string    `json:"status"`
	AcceptedProposalID string    `json:"accepted_proposal_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type listJobsResponse struct {
	Data []jobResponse `json:"data"`
}

// --- Proposals ---

type submitProposalRequest struct {
	JobID   string  `json:"job_id"  validate:"required"`
	Amount  float64 `json:"amount"  validate:"required,gt=0"`
	Message string  `json:"message"`
}

type proposalResponse struct {
	ID                 string    `json:"id"`
	JobID              string    `json:"job_id"`
	FreelancerID       string    `json:"freelancer_id"`
	FreelancerUsername string    `json:"freelancer_username,omitempty"`
	Amount             float64   `json:"amount"`
	Message            string    `json:"message,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type listProposalsResponse struct {
	Data []proposalResponse `json:"data"`
}
