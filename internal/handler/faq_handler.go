package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// FAQHandler handles FAQ endpoints.
type FAQHandler struct {
	faqService service.FAQService
}

// NewFAQHandler creates a new FAQ handler.
func NewFAQHandler(faqService service.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// FAQRequest represents an FAQ create or update request.
type FAQRequest struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	Published bool   `json:"published"`
}

// ListPublished godoc
// @Summary List published FAQ entries
// @Tags public
// @Produce json
// @Success 200 {array} model.FAQEntry
// @Router /faqs [get]
func (h *FAQHandler) ListPublished(c echo.Context) error {
	entries, err := h.faqService.ListPublished(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ListAll godoc
// @Summary List all FAQ entries including drafts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FAQEntry
// @Failure 403 {object} apperr.ErrorResponse
// @Router /admin/faqs [get]
func (h *FAQHandler) ListAll(c echo.Context) error {
	entries, err := h.faqService.ListAll(c.Request().Context(), currentProfile(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Create an FAQ entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FAQRequest true "FAQ data"
// @Success 201 {object} model.FAQEntry
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Router /admin/faqs [post]
func (h *FAQHandler) Create(c echo.Context) error {
	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	entry, err := h.faqService.Create(c.Request().Context(), currentProfile(c), service.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		Published: req.Published,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// Update godoc
// @Summary Update an FAQ entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Param request body FAQRequest true "FAQ data"
// @Success 200 {object} model.FAQEntry
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /admin/faqs/{id} [put]
func (h *FAQHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID()
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	entry, err := h.faqService.Update(c.Request().Context(), currentProfile(c), id, service.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		Published: req.Published,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete an FAQ entry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Success 204 "No Content"
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /admin/faqs/{id} [delete]
func (h *FAQHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID()
	}

	if err := h.faqService.Delete(c.Request().Context(), currentProfile(c), id); err != nil {
		return respondError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
