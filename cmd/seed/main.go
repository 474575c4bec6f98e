package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repo/cache"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/internal/usecase"
	pkgcache "portfolio-api/pkg/cache"
	"portfolio-api/pkg/config"
	"portfolio-api/pkg/database"
	"portfolio-api/pkg/logger"
)

func main() {
	var withAdmin bool
	flag.BoolVar(&withAdmin, "admin", true, "Also store the admin credential from ADMIN_USERNAME/ADMIN_PASSWORD")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	redisClient, err := pkgcache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, seeding without cache invalidation: %v", err)
		redisClient = nil
	}

	blogUseCase := usecase.NewBlogUseCase(
		persistent.NewPostRepository(db),
		cache.NewPostCache(redisClient, cache.DefaultTTL, log),
		nil,
		cfg.SiteAuthor,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if withAdmin && cfg.AdminPassword != "" {
		// EnsureAdmin never issues tokens, so no signing service is needed.
		authUseCase := usecase.NewAuthUseCase(persistent.NewAdminRepository(db), nil, cfg.AdminUsername, log)
		if err := authUseCase.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
			log.Error("Failed to store admin: %v", err)
			panic(err)
		}
	}

	if err := seedPosts(ctx, blogUseCase, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedPosts(ctx context.Context, blog usecase.BlogUseCase, log *logger.Logger) error {
	existing, err := blog.ListAdmin(ctx, entity.PostFilter{Limit: entity.MaxPostLimit})
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	titles := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		titles[p.Title] = struct{}{}
	}

	for _, sp := range samplePosts() {
		if _, ok := titles[sp.Title]; ok {
			log.Info("Post %q already exists, skipping", sp.Title)
			continue
		}
		post, err := blog.Create(ctx, sp)
		if err != nil {
			log.Error("Failed to create post %q: %v", sp.Title, err)
			continue
		}
		log.Info("Created post: %s (%d min read, published=%t)", post.Title, post.ReadingTime, post.Published)
	}
	return nil
}

func samplePosts() []entity.PostInput {
	published := true
	draft := false
	paper := "research"
	academic, _ := json.Marshal(map[string]interface{}{
		"institution": "Centre for Quantum Technologies",
		"year":        2024,
		"keywords":    []string{"quantum machine learning", "variational circuits"},
	})

	return []entity.PostInput{
		{
			Title:        "Variational Quantum Classifiers in Practice",
			Content:      paragraph("Variational circuits trade depth for trainability.", 60),
			Excerpt:      "Notes from training small quantum classifiers on noisy hardware.",
			Published:    &published,
			Tags:         []string{"quantum", "machine-learning"},
			Category:     "research",
			PaperType:    &paper,
			AcademicInfo: academic,
		},
		{
			Title:     "Leading a Student Robotics Team",
			Content:   paragraph("Good teams are built on small, frequent wins.", 40),
			Excerpt:   "What a season of competition taught me about leadership.",
			Published: &published,
			Tags:      []string{"leadership", "robotics"},
			Category:  "leadership",
		},
		{
			Title:     "Draft: Notes on Renewable Microgrids",
			Content:   paragraph("Microgrids balance local supply against demand.", 20),
			Excerpt:   "Work in progress.",
			Published: &draft,
			Tags:      []string{"energy"},
			Category:  "engineering",
		},
	}
}

func paragraph(sentence string, repeat int) string {
	return strings.TrimSpace(strings.Repeat(sentence+" ", repeat))
}
