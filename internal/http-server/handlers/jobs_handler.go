package handlers

import (
	"net/http"
	"strconv"

	"jobly/internal/domain/entity"
	domainservice "jobly/internal/domain/service"
	"jobly/internal/models/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type JobsHandler struct {
	log        *zap.Logger
	jobService domainservice.JobServiceInterface
}

func NewJobsHandler(logger *zap.Logger, jobService domainservice.JobServiceInterface) *JobsHandler {
	return &JobsHandler{
		log:        logger,
		jobService: jobService,
	}
}

// CreateJob: POST /jobs { title, salary, equity, companyHandle } => 201 { job }
func (h *JobsHandler) CreateJob(c *gin.Context) {
	var req dto.JobCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": dto.FromJob(job)})
}

// GetJobs: GET /jobs?title=&minSalary=&hasEquity= => { jobs }
func (h *JobsHandler) GetJobs(c *gin.Context) {
	filter, err := parseJobFilter(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": dto.FromJobs(jobs)})
}

// GetJobByID: GET /jobs/:job_id => { job }
func (h *JobsHandler) GetJobByID(c *gin.Context) {
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": dto.FromJob(job)})
}

// UpdateJob: PATCH /jobs/:job_id { fld1, fld2, ... } => { job }
// Fields can be title, salary and equity.
func (h *JobsHandler) UpdateJob(c *gin.Context) {
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	var changes entity.ChangeSet
	if err := c.ShouldBindJSON(&changes); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), jobID, changes)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": dto.FromJob(job)})
}

// DeleteJob: DELETE /jobs/:job_id => { deleted: id }
func (h *JobsHandler) DeleteJob(c *gin.Context) {
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), jobID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": jobID})
}

// GetCompanyJobs: GET /companies/:handle/jobs => { jobs }
func (h *JobsHandler) GetCompanyJobs(c *gin.Context) {
	jobs, err := h.jobService.GetCompanyJobs(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": dto.FromJobs(jobs)})
}

func jobIDParam(c *gin.Context) (int64, bool) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil || jobID <= 0 {
		abortWithError(c, http.StatusBadRequest, "job id must be a positive integer")
		return 0, false
	}
	return jobID, true
}
