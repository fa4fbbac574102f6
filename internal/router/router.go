package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/parrishadam/thebridgeworld-sub002/internal/auth"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/handler"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Article  *handler.ArticleHandler
	Category *handler.CategoryHandler
	Tag      *handler.TagHandler
	Issue    *handler.IssueHandler
	FAQ      *handler.FAQHandler
	Profile  *handler.ProfileHandler
	Admin    *handler.AdminHandler
	Contact  *handler.ContactHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	verifier *auth.Verifier,
	resolver *entitlement.Resolver,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/categories", h.Category.List)
	api.GET("/tags", h.Tag.List)
	api.GET("/issues", h.Issue.List)
	api.GET("/faqs", h.FAQ.ListPublished)
	api.POST("/contact", h.Contact.Submit)

	// Published articles are public but tier-aware, so identity is
	// resolved when a token is supplied and skipped otherwise.
	reader := api.Group("", optionalIdentity(verifier, resolver))
	reader.GET("/articles/published", h.Article.ListPublished)
	reader.GET("/articles/published/:slug", h.Article.GetPublished)

	// Secured routes (require a verified identity token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return verifier.Parse(tokenString)
		},
	}), loadProfile(resolver))

	// Article routes
	secured.POST("/articles", h.Article.Create)
	secured.GET("/articles", h.Article.List)
	secured.GET("/articles/:id", h.Article.Get)
	secured.PUT("/articles/:id", h.Article.Update)

	// Tag routes
	secured.POST("/tags", h.Tag.Create)

	// Profile routes
	secured.GET("/profile", h.Profile.Get)
	secured.PUT("/profile", h.Profile.Update)
	secured.GET("/profile/login-history", h.Profile.LoginHistory)
	secured.POST("/profile/avatar", h.Profile.UploadAvatar)
	secured.POST("/auth/login-event", h.Profile.RecordLogin)
	secured.GET("/user/subscription", h.Profile.Subscription)

	// Admin routes; role checks live in the services.
	secured.POST("/categories", h.Category.Create)
	secured.PUT("/categories/:id", h.Category.Update)
	secured.DELETE("/categories/:id", h.Category.Delete)
	secured.POST("/admin/issues", h.Issue.Create)
	secured.PUT("/admin/issues/:id", h.Issue.Update)
	secured.DELETE("/admin/issues/:id", h.Issue.Delete)
	secured.GET("/admin/faqs", h.FAQ.ListAll)
	secured.POST("/admin/faqs", h.FAQ.Create)
	secured.PUT("/admin/faqs/:id", h.FAQ.Update)
	secured.DELETE("/admin/faqs/:id", h.FAQ.Delete)
	secured.GET("/admin/users", h.Admin.ListUsers)
	secured.PATCH("/admin/users/:id/profile", h.Admin.PatchProfile)
	secured.POST("/admin/users/:id/reset-password", h.Admin.ResetPassword)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
