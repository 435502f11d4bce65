package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/core/ports"
)

// ProposalHandler handles HTTP requests for proposal operations.
type ProposalHandler struct {
	service ports.ProposalService
}

func NewProposalHandler(service ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// Submit handles POST /proposals. Freelancer role only.
//
// @Summary      Submit a proposal for a job
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitProposalRequest  true  "Proposal details"
// @Success      201   {object}  proposalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /proposals [post]
func (h *ProposalHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	proposal, err := h.service.SubmitProposal(c.Request().Context(), ports.SubmitProposalInput{
		FreelancerID: identity.UserID,
		Role:         identity.Role,
		JobID:        req.JobID,
		Amount:       req.Amount,
		Message:      req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProposalResponse(proposal, identity.Username))
}

// ListForJob handles GET /jobs/:jobId/proposals. Any authenticated role.
//
// @Summary      List proposals for a job
// @Tags         proposals
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  listProposalsResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /jobs/{jobId}/proposals [get]
func (h *ProposalHandler) ListForJob(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	proposals, err := h.service.ListForJob(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListProposalsResponse(proposals))
}

// Accept handles POST /proposals/:proposalId/accept. Job owner only; at most
// one proposal per job can ever win.
//
// @Summary      Accept a proposal
// @Tags         proposals
// @Produce      json
// @Security     BearerAuth
// @Param        proposalId  path      string  true  "Proposal id"
// @Success      200         {object}  proposalResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /proposals/{proposalId}/accept [post]
func (h *ProposalHandler) Accept(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	proposal, err := h.service.AcceptProposal(c.Request().Context(), identity, c.Param("proposalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProposalResponse(proposal, ""))
}

// Reject handles POST /proposals/:proposalId/reject. Job owner only.
//
// @Summary      Reject a proposal
// @Tags         proposals
// @Produce      json
// @Security     BearerAuth
// @Param        proposalId  path      string  true  "Proposal id"
// @Success      200         {object}  proposalResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /proposals/{proposalId}/reject [post]
func (h *ProposalHandler) Reject(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	proposal, err := h.service.RejectProposal(c.Request().Context(), identity, c.Param("proposalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProposalResponse(proposal, ""))
}
