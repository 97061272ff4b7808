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

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(protected *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	protected.POST("/jobs/:id/save", handler.Save)
	protected.DELETE("/jobs/:id/save", handler.Unsave)
	protected.GET("/auth/saved_jobs", handler.List)
}

func (h *SavedJobHandler) Save(c *gin.Context) {
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

	if err := h.savedJobUC.SaveJob(c.Request.Context(), user, jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", nil)
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
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

	if err := h.savedJobUC.UnsaveJob(c.Request.Context(), user, jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job unsaved", nil)
}

func (h *SavedJobHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	saved, err := h.savedJobUC.ListSavedJobs(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", saved)
}
