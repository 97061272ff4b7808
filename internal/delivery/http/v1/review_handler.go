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

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

func NewReviewHandler(public *gin.RouterGroup, protected *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	publicReviews := public.Group("/reviews")
	{
		publicReviews.GET("", handler.List)
		publicReviews.GET("/:id", handler.Get)
	}

	protectedReviews := protected.Group("/reviews")
	{
		protectedReviews.POST("", handler.Create)
		protectedReviews.PUT("/:id", handler.Update)
		protectedReviews.PATCH("/:id", handler.Update)
		protectedReviews.DELETE("/:id", handler.Delete)
	}

	// Employers read the reviews of their own company here
	protected.GET("/company/reviews", handler.ListCompany)
}

type ReviewRequest struct {
	CompanyID  int64  `json:"company_id"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.CompanyID == 0 {
		c.Error(apperror.BadRequest("company_id is required"))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	review := &domain.CompanyReview{
		CompanyID:  req.CompanyID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	if err := h.reviewUC.CreateReview(c.Request.Context(), user, review); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created", review)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid review id"))
		return
	}

	review, err := h.reviewUC.GetReview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Review", review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	reviews, total, err := h.reviewUC.ListReviews(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reviews", response.Paginated{
		Items:    reviews,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ReviewHandler) ListCompany(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	reviews, err := h.reviewUC.ListCompanyReviews(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company reviews", reviews)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid review id"))
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	review := &domain.CompanyReview{
		ID:         id,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	if err := h.reviewUC.UpdateReview(c.Request.Context(), user, review); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Review updated", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid review id"))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	if err := h.reviewUC.DeleteReview(c.Request.Context(), user, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Review deleted", nil)
}
