package repository

import (
	"context"
	"errors"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Create And GetByID", func(t *testing.T) {
		user := &models.User{Name: "Jane", Email: "jane@example.com", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user))
		require.NotZero(t, user.ID)

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", got.Email)
	})

	t.Run("Duplicate Email Rejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Name: "Other", Email: "jane@example.com", Password: "hash"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Equal(t, "User already exists", appErr.Message)
	})

	t.Run("GetByEmail Missing Returns Nil", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByID Missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	profileRepo := NewProfileRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	victim := createTestUser(t, db, "Victim", "victim@example.com")
	bystander := createTestUser(t, db, "Bystander", "bystander@example.com")

	// Victim's profile with children.
	profile := &models.Profile{UserID: victim.ID, Status: "Dev"}
	require.NoError(t, profileRepo.Create(ctx, profile))
	require.NoError(t, profileRepo.AddExperience(ctx, profile.ID, &models.Experience{Title: "Dev", Company: "Co"}))

	// Victim's post, liked and commented on by the bystander.
	victimPost := &models.Post{UserID: victim.ID, Text: "mine"}
	require.NoError(t, postRepo.Create(ctx, victimPost))
	require.NoError(t, postRepo.Like(ctx, bystander.ID, victimPost.ID))
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{PostID: victimPost.ID, UserID: bystander.ID, Text: "nice"}))

	// Bystander's post, liked and commented on by the victim.
	otherPost := &models.Post{UserID: bystander.ID, Text: "theirs"}
	require.NoError(t, postRepo.Create(ctx, otherPost))
	require.NoError(t, postRepo.Like(ctx, victim.ID, otherPost.ID))
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{PostID: otherPost.ID, UserID: victim.ID, Text: "cool"}))

	require.NoError(t, userRepo.DeleteCascade(ctx, victim.ID))

	_, err := userRepo.GetByID(ctx, victim.ID)
	assert.Error(t, err)

	_, err = profileRepo.GetByUserID(ctx, victim.ID)
	assert.Error(t, err)

	_, err = postRepo.GetByID(ctx, victimPost.ID)
	assert.Error(t, err)

	// The bystander's post survives without the victim's traces.
	surviving, err := postRepo.GetByID(ctx, otherPost.ID)
	require.NoError(t, err)
	assert.Empty(t, surviving.Likes)
	assert.Empty(t, surviving.Comments)

	// No orphaned child rows remain.
	var expCount, eduCount, likeCount int64
	db.Model(&models.Experience{}).Count(&expCount)
	db.Model(&models.Education{}).Count(&eduCount)
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Zero(t, expCount)
	assert.Zero(t, eduCount)
	assert.Zero(t, likeCount)

	// Email can be registered again after a hard delete.
	require.NoError(t, userRepo.Create(ctx, &models.User{Name: "Reborn", Email: "victim@example.com", Password: "hash"}))
}
