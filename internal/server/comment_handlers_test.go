package server

import (
	"fmt"
	"net/http"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	t.Run("returns comments newest first", func(t *testing.T) {
		app, srv, db := setupTestServer(t)
		_, authorToken := registerTestUser(t, srv, db, "John Doe", "john@example.com")
		jane, janeToken := registerTestUser(t, srv, db, "Jane Roe", "jane@example.com")
		post := createPost(t, app, authorToken, "discuss")

		commentURL := fmt.Sprintf("/api/posts/comment/%d", post.ID)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, commentURL, map[string]string{
			"text": "first comment",
		}, authorToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		resp, err = app.Test(jsonRequest(t, http.MethodPost, commentURL, map[string]string{
			"text": "second comment",
		}, janeToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var comments []models.Comment
		decodeBody(t, resp, &comments)
		require.Len(t, comments, 2)
		assert.Equal(t, "second comment", comments[0].Text)
		assert.Equal(t, "Jane Roe", comments[0].Name)
		assert.Equal(t, jane.ID, comments[0].UserID)
		assert.Equal(t, "first comment", comments[1].Text)
	})

	t.Run("missing post", func(t *testing.T) {
		app, srv, db := setupTestServer(t)
		_, token := registerTestUser(t, srv, db, "John Doe", "john@example.com")

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts/comment/999", map[string]string{
			"text": "into the void",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("empty text rejected", func(t *testing.T) {
		app, srv, db := setupTestServer(t)
		_, token := registerTestUser(t, srv, db, "John Doe", "john@example.com")
		post := createPost(t, app, token, "discuss")

		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/posts/comment/%d", post.ID), map[string]string{
				"text": " ",
			}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("author deletes own comment", func(t *testing.T) {
		app, srv, db := setupTestServer(t)
		_, token := registerTestUser(t, srv, db, "John Doe", "john@example.com")
		post := createPost(t, app, token, "discuss")

		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/posts/comment/%d", post.ID), map[string]string{"text": "oops"}, token))
		require.NoError(t, err)
		var comments []models.Comment
		decodeBody(t, resp, &comments)
		require.Len(t, comments, 1)

		resp, err = app.Test(jsonRequest(t, http.MethodDelete,
			fmt.Sprintf("/api/posts/comment/%d/%d", post.ID, comments[0].ID), nil, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		decodeBody(t, resp, &comments)
		assert.Empty(t, comments)
	})

	t.Run("non-author rejected", func(t *testing.T) {
		app, srv, db := setupTestServer(t)
		_, authorToken := registerTestUser(t, srv, db, "John Doe", "john@example.com")
		_, otherToken := registerTestUser(t, srv, db, "Jane Roe", "jane@example.com")
		post := createPost(t, app, authorToken, "discuss")

		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/posts/comment/%d", post.ID), map[string]string{"text": "mine"}, authorToken))
		require.NoError(t, err)
		var comments []models.Comment
		decodeBody(t, resp, &comments)
		require.Len(t, comments, 1)

		resp, err = app.Test(jsonRequest(t, http.MethodDelete,
			fmt.Sprintf("/api/posts/comment/%d/%d", post.ID, comments[0].ID), nil, otherToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "User not authorized", body["error"])
	})

	t.Run("comment on a different post reads as missing", func(t *testing.T) {
		app, srv, db := setupTestServer(t)
		_, token := registerTestUser(t, srv, db, "John Doe", "john@example.com")
		postA := createPost(t, app, token, "post A")
		postB := createPost(t, app, token, "post B")

		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/posts/comment/%d", postA.ID), map[string]string{"text": "on A"}, token))
		require.NoError(t, err)
		var comments []models.Comment
		decodeBody(t, resp, &comments)
		require.Len(t, comments, 1)

		resp, err = app.Test(jsonRequest(t, http.MethodDelete,
			fmt.Sprintf("/api/posts/comment/%d/%d", postB.ID, comments[0].ID), nil, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Comment does not exist", body["error"])
	})
}
