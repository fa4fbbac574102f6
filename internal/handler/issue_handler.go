package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// IssueHandler handles magazine issue endpoints.
type IssueHandler struct {
	issueService service.IssueService
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// IssueRequest represents an issue create or update request.
type IssueRequest struct {
	Number      int        `json:"number" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required,max=255"`
	CoverURL    string     `json:"cover_url" validate:"omitempty,max=512"`
	PublishedOn *time.Time `json:"published_on"`
}

// List godoc
// @Summary List magazine issues
// @Tags public
// @Produce json
// @Success 200 {array} model.Issue
// @Router /issues [get]
func (h *IssueHandler) List(c echo.Context) error {
	issues, err := h.issueService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, issues)
}

// Create godoc
// @Summary Create a magazine issue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IssueRequest true "Issue data"
// @Success 201 {object} model.Issue
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 409 {object} apperr.ErrorResponse
// @Router /admin/issues [post]
func (h *IssueHandler) Create(c echo.Context) error {
	var req IssueRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	issue, err := h.issueService.Create(c.Request().Context(), currentProfile(c), service.IssueInput{
		Number:      req.Number,
		Title:       req.Title,
		CoverURL:    req.CoverURL,
		PublishedOn: req.PublishedOn,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, issue)
}

// Update godoc
// @Summary Update a magazine issue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issue ID"
// @Param request body IssueRequest true "Issue data"
// @Success 200 {object} model.Issue
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /admin/issues/{id} [put]
func (h *IssueHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID()
	}

	var req IssueRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	issue, err := h.issueService.Update(c.Request().Context(), currentProfile(c), id, service.IssueInput{
		Number:      req.Number,
		Title:       req.Title,
		CoverURL:    req.CoverURL,
		PublishedOn: req.PublishedOn,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, issue)
}

// Delete godoc
// @Summary Delete an issue with no attached articles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issue ID"
// @Success 204 "No Content"
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Failure 409 {object} apperr.ErrorResponse
// @Router /admin/issues/{id} [delete]
func (h *IssueHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID()
	}

	if err := h.issueService.Delete(c.Request().Context(), currentProfile(c), id); err != nil {
		return respondError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
