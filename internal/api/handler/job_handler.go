package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /jobs. Client role only.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.CreateJob(c.Request().Context(), ports.CreateJobInput{
		ClientID:    identity.UserID,
		Role:        identity.Role,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job, identity.Username))
}

// List handles GET /jobs. Public.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  listJobsResponse
// @Failure      500  {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListJobsResponse(jobs))
}
