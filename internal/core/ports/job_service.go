package ports

import (
	"context"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	ClientID    string
	Role        domain.Role
	Title       string
	Description string
	Budget      float64
}

// JobWithClient is the read-side view of a job with the owning client's
// username resolved.
type JobWithClient struct {
	Job            *domain.Job
	ClientUsername string
}

// JobService defines use-case operations for jobs.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]JobWithClient, error)
}
