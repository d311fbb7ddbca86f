package main

import (
	"fmt"
	"os"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
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

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	tagRepo := persistent.NewTagRepository(db)
	authorRepo := persistent.NewAuthorRepository(db)
	postRepo := persistent.NewPostRepository(db)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@inkwell.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "password123"
	}

	if _, err := userRepo.GetByEmail(adminEmail); err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &entity.User{
			Name:     "Admin",
			Email:    adminEmail,
			Password: string(hashed),
			Role:     entity.RoleAdmin,
		}
		if err := userRepo.Create(admin); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Info("Created admin user %s", adminEmail)
	}

	categoryNames := []string{"Technology", "Design", "Business", "Culture"}
	categories := make([]*entity.Category, 0, len(categoryNames))
	for i, name := range categoryNames {
		category := &entity.Category{
			Name:      name,
			Slug:      slug.Make(name),
			Color:     entity.DefaultColor,
			IsActive:  true,
			SortOrder: i,
		}
		taken, err := categoryRepo.NameOrSlugExists(category.Name, category.Slug, "")
		if err != nil {
			return err
		}
		if taken {
			continue
		}
		if err := categoryRepo.Create(category); err != nil {
			return fmt.Errorf("failed to create category %s: %w", name, err)
		}
		categories = append(categories, category)
		log.Info("Created category %s", name)
	}

	for _, name := range []string{"golang", "api", "tutorial", "opinion"} {
		tag := &entity.Tag{
			Name:     name,
			Slug:     slug.Make(name),
			Color:    entity.DefaultColor,
			IsActive: true,
		}
		taken, err := tagRepo.NameOrSlugExists(tag.Name, tag.Slug, "")
		if err != nil {
			return err
		}
		if taken {
			continue
		}
		if err := tagRepo.Create(tag); err != nil {
			return fmt.Errorf("failed to create tag %s: %w", name, err)
		}
		log.Info("Created tag %s", name)
	}

	if len(categories) == 0 {
		return nil
	}

	author := &entity.Author{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@inkwell.local",
		Username:  "janedoe",
		Bio:       "Staff writer.",
		Title:     "Editor",
		IsActive:  true,
	}
	taken, err := authorRepo.EmailOrUsernameExists(author.Email, author.Username, "")
	if err != nil {
		return err
	}
	if !taken {
		if err := authorRepo.Create(author); err != nil {
			return fmt.Errorf("failed to create author: %w", err)
		}
		log.Info("Created author %s", author.Username)

		now := time.Now()
		post := &entity.Post{
			Title:         "Welcome to Inkwell",
			Slug:          slug.Make("Welcome to Inkwell"),
			Excerpt:       "A quick tour of the platform.",
			Content:       "Inkwell is up and running. This starter post can be edited or deleted from the admin panel.",
			CategoryID:    categories[0].ID,
			AuthorID:      author.ID,
			Status:        entity.PostStatusPublished,
			PublishedAt:   &now,
			ReadTime:      1,
			AllowComments: true,
		}
		exists, err := postRepo.SlugExists(post.Slug, "")
		if err != nil {
			return err
		}
		if !exists {
			if err := postRepo.Create(post, []entity.Tag{{
				Name:     "tutorial",
				Slug:     "tutorial",
				Color:    entity.DefaultColor,
				IsActive: true,
			}}); err != nil {
				return fmt.Errorf("failed to create starter post: %w", err)
			}
			log.Info("Created starter post %s", post.Slug)
		}
	}

	return nil
}
