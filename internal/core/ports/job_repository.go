package ports

import (
	"context"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	// AssignIfOpen performs the conditional open→assigned transition,
	// recording the winning proposal id. It succeeds for exactly one caller
	// per job; every other caller gets domain.ErrJobNotOpen. This is the
	// single arbiter for concurrent acceptance attempts.
	AssignIfOpen(ctx context.Context, jobID, proposalID string) error
	// Unassign rolls an assigned job back to open. Used only as compensation
	// when the paired proposal write fails after a won AssignIfOpen.
	Unassign(ctx context.Context, jobID string) error
}
