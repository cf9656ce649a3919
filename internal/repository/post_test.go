package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "Author", "author@example.com")
	liker := createTestUser(t, db, "Liker", "liker@example.com")

	t.Run("Create And GetByID", func(t *testing.T) {
		post := &models.Post{
			UserID: author.ID,
			Text:   "first post",
			Name:   author.Name,
			Avatar: author.Avatar,
		}
		require.NoError(t, repo.Create(ctx, post))
		require.NotZero(t, post.ID)

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "first post", got.Text)
		assert.Equal(t, author.Name, got.Name)
		assert.Empty(t, got.Likes)
		assert.Empty(t, got.Comments)
	})

	t.Run("GetByID Not Found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.Equal(t, "Post not found", appErr.Message)
	})

	t.Run("List Newest First", func(t *testing.T) {
		older := &models.Post{UserID: author.ID, Text: "older", CreatedAt: time.Now().Add(-time.Hour)}
		newer := &models.Post{UserID: author.ID, Text: "newer"}
		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, newer))

		posts, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(posts), 2)
		assert.Equal(t, "newer", posts[0].Text)
	})

	t.Run("Like Is Idempotent", func(t *testing.T) {
		post := &models.Post{UserID: author.ID, Text: "likeable"}
		require.NoError(t, repo.Create(ctx, post))

		require.NoError(t, repo.Like(ctx, liker.ID, post.ID))
		require.NoError(t, repo.Like(ctx, liker.ID, post.ID))

		likes, err := repo.ListLikes(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, likes, 1)
		assert.Equal(t, liker.ID, likes[0].UserID)

		liked, err := repo.IsLiked(ctx, liker.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("Unlike Then Relike", func(t *testing.T) {
		post := &models.Post{UserID: author.ID, Text: "toggled"}
		require.NoError(t, repo.Create(ctx, post))

		require.NoError(t, repo.Like(ctx, liker.ID, post.ID))
		require.NoError(t, repo.Unlike(ctx, liker.ID, post.ID))

		liked, err := repo.IsLiked(ctx, liker.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, liked)

		// The unique index must not block a fresh like after removal.
		require.NoError(t, repo.Like(ctx, liker.ID, post.ID))
		likes, err := repo.ListLikes(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, likes, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		post := &models.Post{UserID: author.ID, Text: "doomed"}
		require.NoError(t, repo.Create(ctx, post))
		require.NoError(t, repo.Delete(ctx, post.ID))

		_, err := repo.GetByID(ctx, post.ID)
		assert.Error(t, err)
	})
}
