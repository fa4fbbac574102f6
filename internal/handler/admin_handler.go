package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// AdminHandler handles the admin user-management endpoints.
type AdminHandler struct {
	usersService   service.UsersService
	profileService service.ProfileService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(usersService service.UsersService, profileService service.ProfileService) *AdminHandler {
	return &AdminHandler{usersService: usersService, profileService: profileService}
}

// AdminProfileRequest represents an admin edit of any profile.
type AdminProfileRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=255"`
	LastName      *string `json:"last_name" validate:"omitempty,max=255"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
	Bio           *string `json:"bio"`
	PhotoURL      *string `json:"photo_url" validate:"omitempty,max=512"`
	Tier          *string `json:"tier" validate:"omitempty,oneof=free paid premium"`
	IsAdmin       *bool   `json:"is_admin"`
	IsAuthor      *bool   `json:"is_author"`
	IsContributor *bool   `json:"is_contributor"`
	IsLegacy      *bool   `json:"is_legacy"`
}

// ListUsers godoc
// @Summary List users enriched with identity-provider data
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	p := bindPagination(c)

	users, total, err := h.usersService.List(c.Request().Context(), currentProfile(c), p)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, ListResponse{Items: users, Total: total, Page: p.Page, Limit: p.Limit})
}

// PatchProfile godoc
// @Summary Update any user's profile
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Identity ID"
// @Param request body AdminProfileRequest true "Fields to change"
// @Success 200 {object} model.Profile
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /admin/users/{id}/profile [patch]
func (h *AdminHandler) PatchProfile(c echo.Context) error {
	var req AdminProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	profile, err := h.profileService.AdminUpdate(c.Request().Context(), currentProfile(c), c.Param("id"), service.AdminProfilePatch{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Bio:           req.Bio,
		PhotoURL:      req.PhotoURL,
		Tier:          req.Tier,
		IsAdmin:       req.IsAdmin,
		IsAuthor:      req.IsAuthor,
		IsContributor: req.IsContributor,
		IsLegacy:      req.IsLegacy,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// ResetPassword godoc
// @Summary Trigger a password-reset email for a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Identity ID"
// @Success 202 "Accepted"
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /admin/users/{id}/reset-password [post]
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	if err := h.usersService.ResetPassword(c.Request().Context(), currentProfile(c), c.Param("id")); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusAccepted)
}
