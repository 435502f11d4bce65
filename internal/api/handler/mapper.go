package handler

import (
	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toJobResponse(j *domain.Job, clientUsername string) jobResponse {
	return jobResponse{
		ID:                 j.ID,
		Title:              j.Title,
		Description:        j.Description,
		Budget:             j.Budget,
		ClientID:           j.ClientID,
		ClientUsername:     clientUsername,
		Status:             string(j.Status),
		AcceptedProposalID: j.AcceptedProposalID,
		CreatedAt:          j.CreatedAt.UTC(),
	}
}

func toListJobsResponse(items []ports.JobWithClient) listJobsResponse {
	data := make([]jobResponse, len(items))
	for i, item := range items {
		data[i] = toJobResponse(item.Job, item.ClientUsername)
	}
	return listJobsResponse{Data: data}
}

func toProposalResponse(p *domain.Proposal, freelancerUsername string) proposalResponse {
	return proposalResponse{
		ID:                 p.ID,
		JobID:              p.JobID,
		FreelancerID:       p.FreelancerID,
		FreelancerUsername: freelancerUsername,
		Amount:             p.Amount,
		Message:            p.Message,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt.UTC(),
	}
}

func toListProposalsResponse(items []ports.ProposalWithFreelancer) listProposalsResponse {
	data := make([]proposalResponse, len(items))
	for i, item := range items {
		data[i] = toProposalResponse(item.Proposal, item.FreelancerUsername)
	}
	return listProposalsResponse{Data: data}
}
