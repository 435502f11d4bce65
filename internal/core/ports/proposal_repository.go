package ports

import (
	"context"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// ProposalRepository defines persistence operations for proposals.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) (*domain.Proposal, error)
	FindByID(ctx context.Context, id string) (*domain.Proposal, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Proposal, error)
	// UpdateStatus transitions a proposal from the expected prior status to
	// the new one as a conditional write. When the proposal is no longer in
	// the expected status it returns domain.ErrProposalNotPending; when it
	// does not exist at all, domain.ErrProposalNotFound.
	UpdateStatus(ctx context.Context, id string, from, to domain.ProposalStatus) error
}
