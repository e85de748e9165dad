// Package seed populates the database with demo content for development.
package seed

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"quill/internal/auth"
	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Profile describes what to seed. It can be loaded from a YAML file so demo
// environments are reproducible.
type Profile struct {
	Admin struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Readers         int    `yaml:"readers"`
	Posts           int    `yaml:"posts"`
	CommentsPerPost int    `yaml:"comments_per_post"`
	ReaderPassword  string `yaml:"reader_password"`
}

// DefaultProfile returns the profile used when no file is given.
func DefaultProfile() *Profile {
	p := &Profile{
		Readers:         10,
		Posts:           8,
		CommentsPerPost: 4,
		ReaderPassword:  "password123",
	}
	p.Admin.Name = "Site Owner"
	p.Admin.Email = "admin@quill.local"
	p.Admin.Password = "changeme-admin1"
	return p
}

// LoadProfile reads a seed profile from a YAML file. Missing fields fall back
// to the defaults.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed profile: %w", err)
	}
	p := DefaultProfile()
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("failed to parse seed profile: %w", err)
	}
	return p, nil
}

// Seeder writes demo data through the same models the application uses.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a seeder for the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Comments go first so foreign keys never
// block the deletes.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// Run seeds the database per the profile. The admin account is created first
// so it receives the lowest id and with it the post-management privilege.
func (s *Seeder) Run(p *Profile) error {
	admin, err := s.createUser(p.Admin.Name, p.Admin.Email, p.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	readers := make([]*models.User, 0, p.Readers)
	for i := 0; i < p.Readers; i++ {
		reader, err := s.createUser(
			gofakeit.Name(),
			fmt.Sprintf("%s%d@%s", gofakeit.Username(), i, gofakeit.DomainName()),
			p.ReaderPassword,
		)
		if err != nil {
			return fmt.Errorf("failed to create reader: %w", err)
		}
		readers = append(readers, reader)
	}

	for i := 0; i < p.Posts; i++ {
		post := &models.Post{
			// The counter keeps generated titles unique.
			Title:    fmt.Sprintf("%s (%d)", gofakeit.Sentence(5), i+1),
			Subtitle: gofakeit.Sentence(8),
			Date:     time.Now().AddDate(0, 0, -i).Format(models.DateLayout),
			Body:     gofakeit.Paragraph(4, 6, 20, "\n\n"),
			ImageURL: gofakeit.ImageURL(1200, 600),
			AuthorID: admin.ID,
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		for j := 0; j < p.CommentsPerPost && len(readers) > 0; j++ {
			comment := &models.Comment{
				Text:     gofakeit.Sentence(12),
				AuthorID: readers[rand.Intn(len(readers))].ID,
				PostID:   post.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
	}

	return nil
}

func (s *Seeder) createUser(name, email, password string) (*models.User, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Name: name, Email: email, Password: digest}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
