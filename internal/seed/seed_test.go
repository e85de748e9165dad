package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
admin:
  name: Owner
  email: owner@example.com
  password: ownerpass1
readers: 3
posts: 2
comments_per_post: 1
`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", p.Admin.Email)
	assert.Equal(t, 3, p.Readers)
	assert.Equal(t, 2, p.Posts)
	// Unset fields keep their defaults.
	assert.Equal(t, "password123", p.ReaderPassword)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile("does-not-exist.yml")
	assert.Error(t, err)
}

func TestSeederRun(t *testing.T) {
	db, err := database.Connect(&config.Config{
		DBDriver: "sqlite",
		DBName:   fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", t.Name()),
		Env:      "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, derr := db.DB(); derr == nil {
			sqlDB.Close()
		}
	})

	profile := DefaultProfile()
	profile.Readers = 2
	profile.Posts = 3
	profile.CommentsPerPost = 2

	s := NewSeeder(db)
	require.NoError(t, s.Run(profile))

	// The admin account gets the first id.
	var admin models.User
	require.NoError(t, db.First(&admin, 1).Error)
	assert.Equal(t, profile.Admin.Email, admin.Email)

	var postCount, commentCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Equal(t, int64(3), postCount)
	assert.Equal(t, int64(6), commentCount)

	// All posts belong to the admin.
	var foreign int64
	require.NoError(t, db.Model(&models.Post{}).Where("author_id <> ?", admin.ID).Count(&foreign).Error)
	assert.Zero(t, foreign)

	// Reseeding after a clear starts fresh.
	require.NoError(t, s.ClearAll())
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Zero(t, postCount)
}
