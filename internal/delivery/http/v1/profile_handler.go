package v1

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	store     storage.ObjectStore
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, store storage.ObjectStore, uploadLimiter gin.HandlerFunc) {
	handler := &ProfileHandler{profileUC: profileUC, store: store}

	auth := protected.Group("/auth")
	{
		auth.GET("/profile", handler.Get)
		auth.PUT("/update_profile", uploadLimiter, handler.Update)
		auth.PATCH("/update_profile", uploadLimiter, handler.Update)
	}
}

// CandidateProfileRequest carries scalar overwrites plus full-replacement
// collections. Absent fields (nil) leave stored values untouched.
type CandidateProfileRequest struct {
	Phone          *string                `json:"phone"`
	Headline       *string                `json:"headline"`
	About          *string                `json:"about"`
	LinkedinURL    *string                `json:"linkedin_url"`
	GithubURL      *string                `json:"github_url"`
	PortfolioURL   *string                `json:"portfolio_url"`
	Skills         []domain.Skill         `json:"skills"`
	Education      []domain.Education     `json:"education"`
	Certifications []domain.Certification `json:"certifications"`
	Address        *domain.Address        `json:"address"`
}

type EmployerProfileRequest struct {
	CompanyName *string `json:"company_name"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
	Website     *string `json:"website"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// Update dispatches on role. JSON bodies carry scalars and collections;
// multipart bodies additionally carry the picture/resume/logo files.
func (h *ProfileHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	switch user.Role {
	case domain.RoleCandidate:
		h.updateCandidate(c, user)
	case domain.RoleEmployer:
		h.updateEmployer(c, user)
	default:
		c.Error(apperror.BadRequest("No profile exists for this account type"))
	}
}

func (h *ProfileHandler) updateCandidate(c *gin.Context, user *domain.User) {
	var req CandidateProfileRequest

	if isMultipart(c) {
		if err := bindMultipartJSON(c, &req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := &domain.CandidateUpdate{
		Phone:          req.Phone,
		Headline:       req.Headline,
		About:          req.About,
		LinkedinURL:    req.LinkedinURL,
		GithubURL:      req.GithubURL,
		PortfolioURL:   req.PortfolioURL,
		Skills:         req.Skills,
		Education:      req.Education,
		Certifications: req.Certifications,
		Address:        req.Address,
	}

	if isMultipart(c) {
		picturePath, err := h.storeFile(c, "profile_picture", "avatars", upload.ValidatePicture)
		if err != nil {
			c.Error(err)
			return
		}
		upd.PicturePath = picturePath

		resumePath, err := h.storeFile(c, "resume", "resumes", upload.ValidateResume)
		if err != nil {
			c.Error(err)
			return
		}
		upd.ResumePath = resumePath
	}

	profile, err := h.profileUC.UpdateCandidateProfile(c.Request.Context(), user, upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *ProfileHandler) updateEmployer(c *gin.Context, user *domain.User) {
	var req EmployerProfileRequest

	if isMultipart(c) {
		if err := bindMultipartJSON(c, &req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := &domain.EmployerUpdate{
		CompanyName: req.CompanyName,
		Description: req.Description,
		Industry:    req.Industry,
		Website:     req.Website,
	}

	if isMultipart(c) {
		logoPath, err := h.storeFile(c, "logo", "logos", upload.ValidatePicture)
		if err != nil {
			c.Error(err)
			return
		}
		upd.LogoPath = logoPath
	}

	profile, err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), user, upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// storeFile validates and uploads an optional multipart file, returning the
// object key or nil when the field is absent.
func (h *ProfileHandler) storeFile(c *gin.Context, field, prefix string, validate func(string, []byte) error) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil // field not supplied
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded file")
	}
	if err := validate(fileHeader.Filename, data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	key := storage.NewObjectKey(prefix, fileHeader.Filename)
	contentType := mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := h.store.Put(c.Request.Context(), key, data, contentType); err != nil {
		return nil, apperror.Internal(err)
	}
	return &key, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

// bindMultipartJSON fills the request struct from multipart form fields.
// Scalar fields map directly; collection fields carry JSON-encoded values.
func bindMultipartJSON(c *gin.Context, out interface{}) error {
	if err := c.Request.ParseMultipartForm(upload.MaxResumeSize * 2); err != nil {
		return err
	}

	values := map[string]interface{}{}
	for key, vals := range c.Request.MultipartForm.Value {
		if len(vals) == 0 {
			continue
		}
		raw := vals[0]
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			var parsed interface{}
			if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
				values[key] = parsed
				continue
			}
		}
		values[key] = raw
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, out)
}
