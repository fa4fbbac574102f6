package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/parrishadam/thebridgeworld-sub002/internal/auth"
	"github.com/parrishadam/thebridgeworld-sub002/internal/cache"
	"github.com/parrishadam/thebridgeworld-sub002/internal/config"
	"github.com/parrishadam/thebridgeworld-sub002/internal/db"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/handler"
	"github.com/parrishadam/thebridgeworld-sub002/internal/identity"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
	"github.com/parrishadam/thebridgeworld-sub002/internal/router"
	"github.com/parrishadam/thebridgeworld-sub002/internal/service"
	"github.com/parrishadam/thebridgeworld-sub002/internal/storage"
)

// @title The Bridge World API
// @version 1.0
// @description Digital magazine backend with tiered article access, editorial workflow, and admin user management.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.LoginEntry{},
			&model.Article{},
			&model.FAQEntry{},
			&model.Tag{},
			&model.Category{},
			&model.Issue{},
			&model.Profile{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Issue{},
		&model.Category{},
		&model.Tag{},
		&model.Article{},
		&model.FAQEntry{},
		&model.LoginEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)
	loginRepo := repository.NewLoginRepository(gormDB)
	faqRepo := repository.NewFAQRepository(gormDB)

	// Initialize identity components
	verifier := auth.NewVerifier(cfg.IdentitySecret)
	resolver := entitlement.NewResolver(profileRepo, cacheClient)
	provider := identity.NewHTTPProvider(cfg.IdentityBaseURL, cfg.IdentityAPIKey)
	avatarStore := storage.NewDiskStore(cfg.AvatarDir, cfg.AvatarBaseURL)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, articleRepo, cacheClient)
	tagService := service.NewTagService(tagRepo, cacheClient)
	issueService := service.NewIssueService(issueRepo, articleRepo)
	profileService := service.NewProfileService(profileRepo, cacheClient)
	usersService := service.NewUsersService(profileRepo, provider)
	loginService := service.NewLoginHistoryService(loginRepo)
	faqService := service.NewFAQService(faqRepo)
	contactService := service.NewContactService(service.LogMailer{})
	avatarService := service.NewAvatarService(avatarStore, profileRepo, cacheClient)

	// Serve uploaded avatars from disk
	e.Static(cfg.AvatarBaseURL, cfg.AvatarDir)

	// Register routes
	router.Register(e, verifier, resolver, router.Handlers{
		Article:  handler.NewArticleHandler(articleService),
		Category: handler.NewCategoryHandler(categoryService),
		Tag:      handler.NewTagHandler(tagService),
		Issue:    handler.NewIssueHandler(issueService),
		FAQ:      handler.NewFAQHandler(faqService),
		Profile:  handler.NewProfileHandler(profileService, loginService, avatarService),
		Admin:    handler.NewAdminHandler(usersService, profileService),
		Contact:  handler.NewContactHandler(contactService),
	})

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
