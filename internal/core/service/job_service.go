package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlance/marketplace-api/internal/api/metrics"
	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
)

// JobService implements job creation and the public job listing.
type JobService struct {
	jobs     ports.JobRepository
	users    ports.UserRepository
	activity ports.ActivitySink
	logger   zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, activity ports.ActivitySink, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, activity: activity, logger: logger}
}

// CreateJob persists a new open job owned by the acting client.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Description == "" || input.Budget <= 0 {
		return nil, domain.ErrInvalidInput
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		ClientID:    input.ClientID,
		Status:      domain.JobOpen,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.logger.Info().Str("job_id", created.ID).Str("client_id", created.ClientID).Msg("job created")

	s.activity.Enqueue(domain.ActivityEvent{
		Type:      domain.ActivityJobCreated,
		JobID:     created.ID,
		ActorID:   created.ClientID,
		Timestamp: created.CreatedAt,
	})

	return created, nil
}

// ListJobs returns all jobs with the owning client's username resolved.
func (s *JobService) ListJobs(ctx context.Context) ([]ports.JobWithClient, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(jobs))
	seen := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		if _, ok := seen[j.ClientID]; !ok {
			seen[j.ClientID] = struct{}{}
			ids = append(ids, j.ClientID)
		}
	}

	owners, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.JobWithClient, len(jobs))
	for i, j := range jobs {
		item := ports.JobWithClient{Job: j}
		if owner, ok := owners[j.ClientID]; ok {
			item.ClientUsername = owner.Username
		}
		out[i] = item
	}
	return out, nil
}
