package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a routed submission.
type ContactResponse struct {
	Message string `json:"message"`
}

// Submit godoc
// @Summary Submit the contact form
// @Tags public
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Submission"
// @Success 202 {object} ContactResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	err := h.contactService.Submit(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusAccepted, ContactResponse{Message: "message received"})
}
