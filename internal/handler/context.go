package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

// ProfileContextKey is where the router middleware stores the resolved
// profile of the authenticated caller.
const ProfileContextKey = "profile"

// currentProfile returns the caller's profile, or nil for anonymous
// requests on routes where authentication is optional.
func currentProfile(c echo.Context) *model.Profile {
	p, _ := c.Get(ProfileContextKey).(*model.Profile)
	return p
}

// respondError maps a domain error onto its HTTP shape.
func respondError(err error) error {
	httpErr := apperr.MapToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, apperr.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationFailed(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperr.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func invalidID() error {
	return echo.NewHTTPError(http.StatusBadRequest, apperr.ErrorResponse{
		Error: "invalid id",
		Code:  "INVALID_UUID",
	})
}

// ListResponse wraps a page of rows with the total row count.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// bindPagination reads ?page= and ?limit= with sane defaults.
func bindPagination(c echo.Context) repository.Pagination {
	var p repository.Pagination
	echo.QueryParamsBinder(c).Int("page", &p.Page).Int("limit", &p.Limit)
	return p.Normalize()
}
