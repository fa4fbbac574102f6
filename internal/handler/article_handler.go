package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// CreateArticleRequest represents an article creation request.
type CreateArticleRequest struct {
	Title            string          `json:"title" validate:"required,max=255"`
	Slug             string          `json:"slug" validate:"omitempty,max=255"`
	AuthorName       string          `json:"author_name" validate:"omitempty,max=255"`
	Category         string          `json:"category" validate:"omitempty,max=255"`
	Tags             []string        `json:"tags" validate:"omitempty,dive,max=100"`
	AccessTier       string          `json:"access_tier" validate:"omitempty,oneof=free paid premium"`
	Excerpt          string          `json:"excerpt"`
	Status           string          `json:"status" validate:"omitempty,oneof=draft review published"`
	Body             json.RawMessage `json:"body"`
	FeaturedImageURL string          `json:"featured_image_url" validate:"omitempty,max=512"`
	IssueID          *uuid.UUID      `json:"issue_id"`
}

// UpdateArticleRequest represents a sparse article edit.
type UpdateArticleRequest struct {
	Title            *string         `json:"title" validate:"omitempty,max=255"`
	Category         *string         `json:"category" validate:"omitempty,max=255"`
	Tags             *[]string       `json:"tags" validate:"omitempty,dive,max=100"`
	AccessTier       *string         `json:"access_tier" validate:"omitempty,oneof=free paid premium"`
	Excerpt          *string         `json:"excerpt"`
	Status           *string         `json:"status" validate:"omitempty,oneof=draft review published"`
	Body             json.RawMessage `json:"body"`
	FeaturedImageURL *string         `json:"featured_image_url" validate:"omitempty,max=512"`
	IssueID          *uuid.UUID      `json:"issue_id"`
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateArticleRequest true "Article data"
// @Success 201 {object} model.Article
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 409 {object} apperr.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	article, err := h.articleService.Create(c.Request().Context(), currentProfile(c), service.CreateArticleInput{
		Title:            req.Title,
		Slug:             req.Slug,
		AuthorName:       req.AuthorName,
		Category:         req.Category,
		Tags:             req.Tags,
		AccessTier:       req.AccessTier,
		Excerpt:          req.Excerpt,
		Status:           req.Status,
		Body:             req.Body,
		FeaturedImageURL: req.FeaturedImageURL,
		IssueID:          req.IssueID,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, article)
}

// Update godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body UpdateArticleRequest true "Fields to change"
// @Success 200 {object} model.Article
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID()
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	article, err := h.articleService.Update(c.Request().Context(), currentProfile(c), id, service.UpdateArticleInput{
		Title:            req.Title,
		Category:         req.Category,
		Tags:             req.Tags,
		AccessTier:       req.AccessTier,
		Excerpt:          req.Excerpt,
		Status:           req.Status,
		Body:             req.Body,
		FeaturedImageURL: req.FeaturedImageURL,
		IssueID:          req.IssueID,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, article)
}

// Get godoc
// @Summary Get an article for editing
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} model.Article
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 403 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID()
	}

	article, err := h.articleService.Get(c.Request().Context(), currentProfile(c), id)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, article)
}

// List godoc
// @Summary List articles visible to the caller
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param sort_by query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	in := service.ListArticlesInput{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sort_by"),
		SortDesc: c.QueryParam("order") == "desc",
	}
	p := bindPagination(c)

	articles, total, err := h.articleService.List(c.Request().Context(), currentProfile(c), in, p)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, ListResponse{Items: articles, Total: total, Page: p.Page, Limit: p.Limit})
}

// GetPublished godoc
// @Summary Read a published article by slug
// @Tags public
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} service.PublishedArticle
// @Failure 404 {object} apperr.ErrorResponse
// @Router /articles/published/{slug} [get]
func (h *ArticleHandler) GetPublished(c echo.Context) error {
	article, err := h.articleService.GetPublished(c.Request().Context(), currentProfile(c), c.Param("slug"))
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, article)
}

// ListPublished godoc
// @Summary List published articles
// @Tags public
// @Produce json
// @Param category query string false "Filter by category"
// @Param tag query string false "Filter by tag"
// @Param issue_id query string false "Filter by issue"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Router /articles/published [get]
func (h *ArticleHandler) ListPublished(c echo.Context) error {
	f := service.PublishedFilter{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
	}
	if raw := c.QueryParam("issue_id"); raw != "" {
		issueID, err := uuid.Parse(raw)
		if err != nil {
			return invalidID()
		}
		f.IssueID = &issueID
	}
	p := bindPagination(c)

	articles, total, err := h.articleService.ListPublished(c.Request().Context(), currentProfile(c), f, p)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, ListResponse{Items: articles, Total: total, Page: p.Page, Limit: p.Limit})
}
