package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlance/marketplace-api/internal/api/metrics"
	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
)

// ProposalService implements proposal submission, listing, and the
// acceptance/rejection decisions.
type ProposalService struct {
	proposals ports.ProposalRepository
	jobs      ports.JobRepository
	users     ports.UserRepository
	activity  ports.ActivitySink
	logger    zerolog.Logger
}

func NewProposalService(
	proposals ports.ProposalRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	activity ports.ActivitySink,
	logger zerolog.Logger,
) *ProposalService {
	return &ProposalService{
		proposals: proposals,
		jobs:      jobs,
		users:     users,
		activity:  activity,
		logger:    logger,
	}
}

// SubmitProposal persists a pending proposal against an open job. Proposals
// against missing or non-open jobs are rejected outright.
func (s *ProposalService) SubmitProposal(ctx context.Context, input ports.SubmitProposalInput) (*domain.Proposal, error) {
	if input.Role != domain.RoleFreelancer {
		return nil, domain.ErrForbidden
	}
	if input.JobID == "" || input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobOpen {
		return nil, domain.ErrJobNotOpen
	}

	proposal := &domain.Proposal{
		JobID:        input.JobID,
		FreelancerID: input.FreelancerID,
		Amount:       input.Amount,
		Message:      input.Message,
		Status:       domain.ProposalPending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.proposals.Create(ctx, proposal)
	if err != nil {
		s.logger.Error().Err(err).Str("job_id", input.JobID).Msg("failed to create proposal")
		return nil, err
	}

	metrics.ProposalsSubmittedTotal.Inc()
	s.logger.Info().
		Str("proposal_id", created.ID).
		Str("job_id", created.JobID).
		Str("freelancer_id", created.FreelancerID).
		Msg("proposal submitted")

	s.activity.Enqueue(domain.ActivityEvent{
		Type:       domain.ActivityProposalSubmitted,
		JobID:      created.JobID,
		ProposalID: created.ID,
		ActorID:    created.FreelancerID,
		Timestamp:  created.CreatedAt,
	})

	return created, nil
}

// ListForJob returns all proposals for a job with each freelancer's username
// resolved. The job must exist.
func (s *ProposalService) ListForJob(ctx context.Context, jobID string) ([]ports.ProposalWithFreelancer, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}

	proposals, err := s.proposals.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(proposals))
	seen := make(map[string]struct{}, len(proposals))
	for _, p := range proposals {
		if _, ok := seen[p.FreelancerID]; !ok {
			seen[p.FreelancerID] = struct{}{}
			ids = append(ids, p.FreelancerID)
		}
	}

	freelancers, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.ProposalWithFreelancer, len(proposals))
	for i, p := range proposals {
		item := ports.ProposalWithFreelancer{Proposal: p}
		if u, ok := freelancers[p.FreelancerID]; ok {
			item.FreelancerUsername = u.Username
		}
		out[i] = item
	}
	return out, nil
}

// AcceptProposal flips a proposal to accepted and its job to assigned as one
// logical unit. The conditional open→assigned write on the job is the single
// arbiter under concurrency: exactly one caller per job wins it, all others
// get domain.ErrJobNotOpen. The proposal write proceeds only after the win.
func (s *ProposalService) AcceptProposal(ctx context.Context, identity ports.Identity, proposalID string) (*domain.Proposal, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, proposal.JobID)
	if err != nil {
		return nil, err
	}

	// Only the client who owns the job may decide its proposals.
	if job.ClientID != identity.UserID {
		return nil, domain.ErrForbidden
	}

	if job.Status != domain.JobOpen {
		metrics.ProposalDecisionsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrJobNotOpen
	}
	if proposal.Status != domain.ProposalPending {
		return nil, domain.ErrProposalNotPending
	}

	if err := s.jobs.AssignIfOpen(ctx, job.ID, proposal.ID); err != nil {
		if errors.Is(err, domain.ErrJobNotOpen) {
			metrics.ProposalDecisionsTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	if err := s.proposals.UpdateStatus(ctx, proposal.ID, domain.ProposalPending, domain.ProposalAccepted); err != nil {
		// The job CAS was won but the proposal write failed: roll the job
		// back so the pair is never observable half-committed.
		if rbErr := s.jobs.Unassign(ctx, job.ID); rbErr != nil {
			s.logger.Error().Err(rbErr).
				Str("job_id", job.ID).
				Str("proposal_id", proposal.ID).
				Msg("failed to roll back job assignment")
		}
		return nil, fmt.Errorf("accept proposal: %w", err)
	}

	proposal.Status = domain.ProposalAccepted
	metrics.ProposalDecisionsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info().
		Str("proposal_id", proposal.ID).
		Str("job_id", job.ID).
		Str("client_id", identity.UserID).
		Msg("proposal accepted")

	s.activity.Enqueue(domain.ActivityEvent{
		Type:       domain.ActivityProposalAccepted,
		JobID:      job.ID,
		ProposalID: proposal.ID,
		ActorID:    identity.UserID,
		Timestamp:  time.Now().UTC(),
	})

	return proposal, nil
}

// RejectProposal flips a pending proposal to rejected. The job's status is
// untouched; rejecting never blocks other proposals.
func (s *ProposalService) RejectProposal(ctx context.Context, identity ports.Identity, proposalID string) (*domain.Proposal, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, proposal.JobID)
	if err != nil {
		return nil, err
	}

	if job.ClientID != identity.UserID {
		return nil, domain.ErrForbidden
	}
	if proposal.Status != domain.ProposalPending {
		return nil, domain.ErrProposalNotPending
	}

	if err := s.proposals.UpdateStatus(ctx, proposal.ID, domain.ProposalPending, domain.ProposalRejected); err != nil {
		return nil, err
	}

	proposal.Status = domain.ProposalRejected
	metrics.ProposalDecisionsTotal.WithLabelValues("rejected").Inc()
	s.logger.Info().
		Str("proposal_id", proposal.ID).
		Str("job_id", job.ID).
		Msg("proposal rejected")

	s.activity.Enqueue(domain.ActivityEvent{
		Type:       domain.ActivityProposalRejected,
		JobID:      job.ID,
		ProposalID: proposal.ID,
		ActorID:    identity.UserID,
		Timestamp:  time.Now().UTC(),
	})

	return proposal, nil
}
