package seed

import (
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	))
	return db
}

func TestRun(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Run(db, Options{NumUsers: 5, PostsPerUser: 2}))

	var userCount, profileCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)

	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(5), profileCount)
	assert.Equal(t, int64(10), postCount)

	// Every post carries the author snapshot.
	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, post := range posts {
		assert.NotEmpty(t, post.Name)
		assert.NotEmpty(t, post.Avatar)
	}
}

func TestRun_CleanWipesExistingData(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Run(db, Options{NumUsers: 3, PostsPerUser: 1}))
	require.NoError(t, Run(db, Options{NumUsers: 4, PostsPerUser: 1, ShouldClean: true}))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(4), userCount)
}
