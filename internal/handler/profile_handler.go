package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// ProfileHandler handles the caller's own profile, subscription and
// login history endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
	loginService   service.LoginHistoryService
	avatarService  service.AvatarService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(
	profileService service.ProfileService,
	loginService service.LoginHistoryService,
	avatarService service.AvatarService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		loginService:   loginService,
		avatarService:  avatarService,
	}
}

// UpdateProfileRequest represents a self-service profile edit.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,max=255"`
	Bio       *string `json:"bio"`
	IsAdmin   *bool   `json:"is_admin"`
}

// SubscriptionResponse represents the caller's subscription state and
// capability flags.
type SubscriptionResponse struct {
	Tier          string `json:"tier"`
	IsAdmin       bool   `json:"is_admin"`
	IsAuthor      bool   `json:"is_author"`
	IsContributor bool   `json:"is_contributor"`
	IsLegacy      bool   `json:"is_legacy"`
}

// AvatarResponse carries the stored avatar URL.
type AvatarResponse struct {
	URL string `json:"url"`
}

// Get godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} apperr.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	p := currentProfile(c)
	if p == nil {
		return respondError(apperr.ErrUnauthenticated)
	}
	return c.JSON(http.StatusOK, p)
}

// Update godoc
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} model.Profile
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	profile, err := h.profileService.UpdateSelf(c.Request().Context(), currentProfile(c), service.SelfProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// LoginHistory godoc
// @Summary List recent logins for the caller or, for admins, any user
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Target identity (admin only)"
// @Success 200 {array} model.LoginEntry
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Router /profile/login-history [get]
func (h *ProfileHandler) LoginHistory(c echo.Context) error {
	entries, err := h.loginService.List(c.Request().Context(), currentProfile(c), c.QueryParam("user_id"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// RecordLogin godoc
// @Summary Record a login event for the caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} apperr.ErrorResponse
// @Router /auth/login-event [post]
func (h *ProfileHandler) RecordLogin(c echo.Context) error {
	p := currentProfile(c)
	if p == nil {
		return respondError(apperr.ErrUnauthenticated)
	}

	err := h.loginService.Record(c.Request().Context(), p.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return respondError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Subscription godoc
// @Summary Get the caller's subscription tier
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SubscriptionResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Router /user/subscription [get]
func (h *ProfileHandler) Subscription(c echo.Context) error {
	p := currentProfile(c)
	if p == nil {
		return respondError(apperr.ErrUnauthenticated)
	}

	return c.JSON(http.StatusOK, SubscriptionResponse{
		Tier:          string(p.Tier),
		IsAdmin:       p.IsAdmin,
		IsAuthor:      p.IsAuthor,
		IsContributor: p.IsContributor,
		IsLegacy:      p.IsLegacy,
	})
}

// UploadAvatar godoc
// @Summary Upload the caller's profile photo
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file"
// @Success 200 {object} AvatarResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Router /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperr.ErrorResponse{
			Error: "missing avatar file",
			Code:  "INVALID_REQUEST",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return invalidBody()
	}
	defer file.Close()

	// Read one byte past the cap so oversize uploads are detected
	// without buffering the whole body.
	data, err := io.ReadAll(io.LimitReader(file, service.MaxAvatarBytes+1))
	if err != nil {
		return invalidBody()
	}

	url, err := h.avatarService.Upload(c.Request().Context(), currentProfile(c), data)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, AvatarResponse{URL: url})
}
