package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/config"
	"github.com/adityachavhan45/blogbackend/internal/database"
	"github.com/adityachavhan45/blogbackend/internal/models"
	"github.com/adityachavhan45/blogbackend/internal/recommendations"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
)

var blogCategories = []string{"tech", "travel", "food", "health", "finance", "culture"}

var blogTags = []string{
	"golang", "databases", "cloud", "budget", "street-food", "fitness",
	"investing", "startups", "remote-work", "photography", "ai", "security",
}

// Seeds the development database with users, blogs and tracked activity so
// the recommendation endpoints return something interesting locally.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	log.Println("🌱 Seeding development database...")

	if err := database.Initialize(); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	_ = gofakeit.Seed(time.Now().UnixNano())

	users := seedUsers(25)
	blogs := seedBlogs(120)
	seedActivity(users, blogs)

	log.Printf("✅ Seeded %d users, %d blogs", len(users), len(blogs))
}

func seedUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("%d_%s", i, gofakeit.Email()),
		}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Fatalf("❌ Failed to create user: %v", err)
		}
		users = append(users, user)
	}
	return users
}

func seedBlogs(n int) []models.Blog {
	blogs := make([]models.Blog, 0, n)
	for i := 0; i < n; i++ {
		tags := make([]string, 0, 3)
		for _, idx := range rand.Perm(len(blogTags))[:rand.Intn(3)+1] {
			tags = append(tags, blogTags[idx])
		}

		blog := models.Blog{
			Title:    gofakeit.Sentence(6),
			Excerpt:  gofakeit.Sentence(15),
			Content:  gofakeit.Paragraph(4, 6, 30, "\n\n"),
			Category: blogCategories[rand.Intn(len(blogCategories))],
			Tags:     tags,
			ReadTime: fmt.Sprintf("%d min read", rand.Intn(12)+3),
		}
		if err := database.DB.Create(&blog).Error; err != nil {
			log.Fatalf("❌ Failed to create blog: %v", err)
		}

		// Spread creation times over the past month so the 7-day trending
		// window has both fresh and stale content
		createdAt := gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now())
		database.DB.Model(&blog).UpdateColumn("created_at", createdAt)
		blog.CreatedAt = createdAt

		blogs = append(blogs, blog)
	}
	return blogs
}

func seedActivity(users []models.User, blogs []models.Blog) {
	ctx := context.Background()
	recs := recommendations.NewService(database.DB, config.DefaultWeights())

	for _, user := range users {
		// Each user reads a handful of blogs, some more than once
		for _, idx := range rand.Perm(len(blogs))[:rand.Intn(15)+3] {
			blog := blogs[idx]
			visits := rand.Intn(3) + 1
			for v := 0; v < visits; v++ {
				_, err := recs.TrackActivity(ctx, recommendations.TrackActivityInput{
					UserID:         user.ID,
					BlogID:         blog.ID,
					TimeSpent:      rand.Intn(600),
					ReadPercentage: float64(rand.Intn(101)),
					Liked:          rand.Intn(4) == 0,
					Commented:      rand.Intn(8) == 0,
					Shared:         rand.Intn(12) == 0,
				})
				if err != nil {
					log.Fatalf("❌ Failed to track activity: %v", err)
				}
			}
		}
	}
}
