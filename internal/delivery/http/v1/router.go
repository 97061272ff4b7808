package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	ProfileUC      domain.ProfileUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	NotificationUC domain.NotificationUsecase
	ReviewUC       domain.ReviewUsecase
	SavedJobUC     domain.SavedJobUsecase
	DashboardUC    domain.DashboardUsecase
	Tokens         *token.Service
	Store          storage.ObjectStore
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run before anything that can abort.
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.CSRFMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	optionalAuth := middleware.OptionalAuth(deps.Tokens, deps.AuthUC)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.DashboardUC, loginLimiter)
		NewProfileHandler(protected, deps.ProfileUC, deps.Store, uploadLimiter)
		NewJobHandler(v1, protected, optionalAuth, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC, uploadLimiter)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewReviewHandler(v1, protected, deps.ReviewUC)
		NewSavedJobHandler(protected, deps.SavedJobUC)
	}

	return r
}
