package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/jobs/:id/apply", uploadLimiter, handler.Apply)

	applications := protected.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.PATCH("/:id", handler.UpdateStatus)
		applications.POST("/:id/download-resume", handler.DownloadResume)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply submits a multipart application: cover_letter form field plus an
// optional resume file.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	in := domain.ApplyInput{
		JobID:       jobID,
		CoverLetter: c.PostForm("cover_letter"),
	}

	if fileHeader, err := c.FormFile("resume"); err == nil {
		data, readErr := readMultipartFile(fileHeader)
		if readErr != nil {
			c.Error(apperror.BadRequest("Could not read uploaded resume"))
			return
		}
		in.ResumeName = fileHeader.Filename
		in.ResumeData = data
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), user, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", gin.H{
		"application_id": app.ID,
		"status":         app.Status,
	})
}

// List returns role-scoped applications: submitted for candidates, received
// for employers.
func (h *ApplicationHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	apps, err := h.applicationUC.ListForUser(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), user, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", gin.H{
		"application_id": id,
		"status":         req.Status,
	})
}

func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	download, err := h.applicationUC.DownloadResume(c.Request.Context(), user, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume download link", download)
}
