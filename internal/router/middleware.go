package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/auth"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/handler"
)

// loadProfile resolves the authenticated caller's profile from the
// verified token and stores it on the request context. It runs after
// the JWT middleware, so a missing or malformed token never gets here.
func loadProfile(resolver *entitlement.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.IdentityClaims)
			if !ok {
				return fail(apperr.ErrUnauthenticated)
			}

			profile, err := resolver.Resolve(c.Request().Context(), claims)
			if err != nil {
				return fail(err)
			}

			c.Set(handler.ProfileContextKey, profile)
			return next(c)
		}
	}
}

// optionalIdentity resolves a profile when a bearer token is present
// and valid, and otherwise lets the request through anonymously. Used
// on the public article routes so the paywall can see subscribers.
func optionalIdentity(verifier *auth.Verifier, resolver *entitlement.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return next(c)
			}

			claims, err := verifier.Parse(tokenString)
			if err != nil {
				return next(c)
			}

			profile, err := resolver.Resolve(c.Request().Context(), claims)
			if err != nil {
				return next(c)
			}

			c.Set(handler.ProfileContextKey, profile)
			return next(c)
		}
	}
}

func fail(err error) error {
	httpErr := apperr.MapToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
