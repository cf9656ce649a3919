// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"crypto/md5"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers     int
	PostsPerUser int
	ShouldClean  bool
}

// DefaultOptions is a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{NumUsers: 25, PostsPerUser: 3}
}

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "SQL", "PostgreSQL",
	"Redis", "Docker", "Kubernetes", "React", "HTML", "CSS", "AWS",
	"gRPC", "GraphQL", "Terraform", "Linux", "Git",
}

// Run populates the database with fake users, profiles and a post feed.
// All seeded accounts share the password "password123".
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.NumUsers <= 0 {
		opts.NumUsers = DefaultOptions().NumUsers
	}
	if opts.PostsPerUser <= 0 {
		opts.PostsPerUser = DefaultOptions().PostsPerUser
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean before seed: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s.%d@%s",
			strings.ToLower(strings.ReplaceAll(name, " ", ".")), i, gofakeit.DomainName())
		user := &models.User{
			Name:     name,
			Email:    email,
			Password: string(hashed),
			Avatar:   fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", md5.Sum([]byte(email))),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		if err := seedProfile(db, r, user); err != nil {
			return err
		}
		for i := 0; i < opts.PostsPerUser; i++ {
			if err := seedPost(db, r, user, users); err != nil {
				return err
			}
		}
	}

	log.Printf("seeded %d users with profiles and %d posts each", len(users), opts.PostsPerUser)
	return nil
}

func seedProfile(db *gorm.DB, r *rand.Rand, user *models.User) error {
	skills := pick(r, skillPool, 2+r.Intn(5))
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        fmt.Sprintf("https://%s", gofakeit.DomainName()),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Status:         statuses[r.Intn(len(statuses))],
		Skills:         datatypes.JSONSlice[string](skills),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", strings.ToLower(gofakeit.Username())),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", strings.ToLower(gofakeit.Username())),
		},
	}
	if err := db.Create(profile).Error; err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	for i := 0; i < 1+r.Intn(3); i++ {
		from := gofakeit.DateRange(
			time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0))
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !exp.Current {
			to := gofakeit.DateRange(from, time.Now())
			exp.To = &to
		}
		if err := db.Create(exp).Error; err != nil {
			return fmt.Errorf("seed experience: %w", err)
		}
	}

	gradFrom := gofakeit.DateRange(
		time.Now().AddDate(-15, 0, 0), time.Now().AddDate(-5, 0, 0))
	gradTo := gradFrom.AddDate(4, 0, 0)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         gradFrom,
		To:           &gradTo,
	}
	if err := db.Create(edu).Error; err != nil {
		return fmt.Errorf("seed education: %w", err)
	}
	return nil
}

func seedPost(db *gorm.DB, r *rand.Rand, author *models.User, users []*models.User) error {
	post := &models.Post{
		UserID: author.ID,
		Text:   gofakeit.Paragraph(1, 2+r.Intn(3), 8, " "),
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := db.Create(post).Error; err != nil {
		return fmt.Errorf("seed post: %w", err)
	}

	// A few likes and comments from other seeded users.
	for _, other := range pickUsers(r, users, r.Intn(4)) {
		if other.ID == author.ID {
			continue
		}
		like := &models.Like{PostID: post.ID, UserID: other.ID}
		if err := db.Create(like).Error; err != nil {
			return fmt.Errorf("seed like: %w", err)
		}
	}
	for _, other := range pickUsers(r, users, r.Intn(3)) {
		comment := &models.Comment{
			PostID: post.ID,
			UserID: other.ID,
			Text:   gofakeit.Sentence(8),
			Name:   other.Name,
			Avatar: other.Avatar,
		}
		if err := db.Create(comment).Error; err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
	}
	return nil
}

func clean(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Comment{}, &models.Like{}, &models.Post{},
		&models.Education{}, &models.Experience{}, &models.Profile{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func pick(r *rand.Rand, pool []string, n int) []string {
	idx := r.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}

func pickUsers(r *rand.Rand, users []*models.User, n int) []*models.User {
	idx := r.Perm(len(users))
	if n > len(users) {
		n = len(users)
	}
	out := make([]*models.User, 0, n)
	for _, i := range idx[:n] {
		out = append(out, users[i])
	}
	return out
}
