package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parrishadam/thebridgeworld-sub002/internal/auth"
	"github.com/parrishadam/thebridgeworld-sub002/internal/config"
	"github.com/parrishadam/thebridgeworld-sub002/internal/db"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/slug"
)

// Seeds a development database with an admin profile, the standard
// category set, a sample issue and a handful of articles, then prints
// a bearer token for the admin so the API is usable immediately.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Issue{},
		&model.Category{},
		&model.Tag{},
		&model.Article{},
		&model.FAQEntry{},
		&model.LoginEntry{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	adminID := getAdminID()
	admin := model.Profile{
		ID:            adminID,
		FirstName:     "Site",
		LastName:      "Admin",
		Email:         "admin@thebridgeworld.com",
		Tier:          model.TierPremium,
		IsAdmin:       true,
		IsAuthor:      true,
		IsContributor: true,
	}
	if err := upsert(gormDB, &admin); err != nil {
		log.Fatalf("Failed to seed admin profile: %v", err)
	}
	log.Printf("Seeded admin profile %s", adminID)

	for i, name := range []string{"Bidding", "Card Play", "Tournaments", "History", "Problems"} {
		category := model.Category{
			Name:      name,
			Slug:      slug.Make(name),
			SortOrder: i,
		}
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
	}
	log.Println("Seeded categories")

	publishedOn := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	issue := model.Issue{
		Number:      100,
		Title:       "Centennial Issue",
		Slug:        slug.Make("100 Centennial Issue"),
		PublishedOn: &publishedOn,
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&issue).Error; err != nil {
		log.Fatalf("Failed to seed issue: %v", err)
	}
	log.Println("Seeded issue")

	now := time.Now()
	samples := []model.Article{
		{
			Title:       "Welcome to the Digital Edition",
			AuthorID:    adminID,
			AuthorName:  admin.DisplayName(),
			Category:    "History",
			Tags:        []string{"announcements"},
			AccessTier:  model.TierFree,
			Excerpt:     "The magazine arrives online.",
			Status:      model.StatusPublished,
			Body:        json.RawMessage(`{"blocks":[{"type":"paragraph","text":"The magazine arrives online."}]}`),
			PublishedAt: &now,
		},
		{
			Title:      "Squeeze Play Fundamentals",
			AuthorID:   adminID,
			AuthorName: admin.DisplayName(),
			Category:   "Card Play",
			Tags:       []string{"technique", "declarer-play"},
			AccessTier: model.TierPaid,
			Excerpt:    "Counting to thirteen, the hard way.",
			Status:     model.StatusDraft,
			Body:       json.RawMessage(`{"blocks":[]}`),
		},
	}
	for i := range samples {
		samples[i].Slug = slug.Make(samples[i].Title)
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&samples[i]).Error; err != nil {
			log.Fatalf("Failed to seed article %q: %v", samples[i].Title, err)
		}
	}
	log.Printf("Seeded %d articles", len(samples))

	faqs := []model.FAQEntry{
		{Question: "How do I access back issues?", Answer: "Premium subscribers can read every published issue in the archive.", SortOrder: 0, Published: true},
		{Question: "Can I share my subscription?", Answer: "Subscriptions are personal and tied to your account.", SortOrder: 1, Published: true},
	}
	for i := range faqs {
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&faqs[i]).Error; err != nil {
			log.Fatalf("Failed to seed FAQ: %v", err)
		}
	}
	log.Println("Seeded FAQ entries")

	verifier := auth.NewVerifier(cfg.IdentitySecret)
	token, err := verifier.Sign(adminID, admin.Email, admin.DisplayName(), 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to sign dev token: %v", err)
	}
	fmt.Printf("Admin bearer token (24h):\n%s\n", token)
}

// upsert writes the row, updating it in place when the key exists.
func upsert(gormDB *gorm.DB, value interface{}) error {
	return gormDB.Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}

func getAdminID() string {
	return getEnv("SEED_ADMIN_ID", "dev-admin-001")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
