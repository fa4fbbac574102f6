package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// TagHandler handles tag endpoints.
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTagRequest represents a tag creation request.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// List godoc
// @Summary List tags, optionally filtered by substring
// @Tags public
// @Produce json
// @Param q query string false "Name substring"
// @Success 200 {array} model.Tag
// @Router /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.tagService.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tags)
}

// Create godoc
// @Summary Create a tag, returning the existing row on a name match
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTagRequest true "Tag data"
// @Success 200 {object} model.Tag
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Router /tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var req CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	tag, err := h.tagService.Create(c.Request().Context(), currentProfile(c), req.Name)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, tag)
}
