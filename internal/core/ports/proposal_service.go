package ports

import (
	"context"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// SubmitProposalInput carries all data needed to bid on a job.
type SubmitProposalInput struct {
	FreelancerID string
	Role         domain.Role
	JobID        string
	Amount       float64
	Message      string
}

// ProposalWithFreelancer is the read-side view of a proposal with the
// bidding freelancer's username resolved.
type ProposalWithFreelancer struct {
	Proposal           *domain.Proposal
	FreelancerUsername string
}

// ProposalService defines use-case operations for proposals, including the
// acceptance transition that pairs proposal approval with job assignment.
type ProposalService interface {
	SubmitProposal(ctx context.Context, input SubmitProposalInput) (*domain.Proposal, error)
	ListForJob(ctx context.Context, jobID string) ([]ProposalWithFreelancer, error)
	AcceptProposal(ctx context.Context, identity Identity, proposalID string) (*domain.Proposal, error)
	RejectProposal(ctx context.Context, identity Identity, proposalID string) (*domain.Proposal, error)
}
