package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, optionalAuth gin.HandlerFunc, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public board: only ACTIVE postings, enforced server-side. Detail pages
	// are public too; optional auth lets the owning employer see drafts.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.PublicList)
		publicJobs.GET("/:id", optionalAuth, handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.PATCH("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type JobRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Requirements     []string `json:"requirements" binding:"required"`
	Responsibilities []string `json:"responsibilities" binding:"required"`
	Status           string   `json:"status"`
	EmploymentType   string   `json:"employment_type"`
	JobType          string   `json:"job_type"`
	ExperienceLevel  string   `json:"experience_level"`
	SalaryMin        float64  `json:"salary_min"`
	SalaryMax        float64  `json:"salary_max" binding:"omitempty,gtefield=SalaryMin"`
	Deadline         *string  `json:"deadline"`
	IsActive         *bool    `json:"is_active"`
}

func (r *JobRequest) toDomain() (*domain.JobPosting, error) {
	job := &domain.JobPosting{
		Title:            r.Title,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Status:           r.Status,
		EmploymentType:   r.EmploymentType,
		JobType:          r.JobType,
		ExperienceLevel:  r.ExperienceLevel,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		IsActive:         true,
	}
	if r.IsActive != nil {
		job.IsActive = *r.IsActive
	}
	if r.Deadline != nil && *r.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, *r.Deadline)
		if err != nil {
			deadline, err = time.Parse("2006-01-02", *r.Deadline)
		}
		if err != nil {
			return nil, apperror.BadRequest("Deadline must be an RFC3339 timestamp or YYYY-MM-DD date")
		}
		job.Deadline = &deadline
	}
	return job, nil
}

func (h *JobHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can create jobs"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) PublicList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListPublicJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs", response.Paginated{
		Items:    jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) ListByEmployer(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can list their jobs"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	userID := c.GetInt64(string(domain.KeyUserID))
	jobs, total, err := h.jobUC.ListEmployerJobs(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs", response.Paginated{
		Items:    jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, jobErr := req.toDomain()
	if jobErr != nil {
		c.Error(jobErr)
		return
	}
	job.ID = id

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job, req.IsActive); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
