package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListComments(t *testing.T) {
	ts := newTestServer(t)

	ts.posts.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Post{ID: 1, Title: "First"}, nil)
	ts.comments.On("ListByPost", mock.Anything, uint(1)).Return([]*models.Comment{
		{ID: 1, Text: "hello", PostID: 1, AuthorID: 2},
		{ID: 2, Text: "again", PostID: 1, AuthorID: 2},
	}, nil)

	resp, err := ts.app.Test(jsonRequest(t, "GET", "/api/posts/1/comments", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["count"])
}

func TestListComments_PostNotFound(t *testing.T) {
	ts := newTestServer(t)

	ts.posts.On("GetByID", mock.Anything, uint(99)).
		Return(nil, models.NewNotFoundError("Post", 99))

	resp, err := ts.app.Test(jsonRequest(t, "GET", "/api/posts/99/comments", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	ts.comments.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything)
}

func TestCreateComment(t *testing.T) {
	ts := newTestServer(t)
	// Any logged-in user can comment, not just the administrator.
	cookie := ts.loginAs(t, &models.User{ID: 2, Email: "reader@example.com", Name: "Reader"})

	ts.posts.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Post{ID: 1, Title: "First"}, nil)
	ts.comments.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			comment := args.Get(1).(*models.Comment)
			comment.ID = 3
			assert.Equal(t, uint(2), comment.AuthorID)
			assert.Equal(t, uint(1), comment.PostID)
		}).
		Return(nil)
	ts.comments.On("GetByID", mock.Anything, uint(3)).
		Return(&models.Comment{ID: 3, Text: "hello", AuthorID: 2, PostID: 1}, nil)

	req := jsonRequest(t, "POST", "/api/posts/1/comments", map[string]string{
		"text": "hello",
	})
	req.AddCookie(cookie)
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	comment := body["comment"].(map[string]interface{})
	assert.Equal(t, "hello", comment["text"])

	ts.comments.AssertExpectations(t)
}

func TestCreateComment_Anonymous(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(t, "POST", "/api/posts/1/comments", map[string]string{
		"text": "hello",
	})
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, models.CodeUnauthenticated, body["code"])

	ts.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComment_Validation(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.loginAs(t, &models.User{ID: 2, Email: "reader@example.com"})

	req := jsonRequest(t, "POST", "/api/posts/1/comments", map[string]string{
		"text": "   ",
	})
	req.AddCookie(cookie)
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	ts.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.loginAs(t, &models.User{ID: 2, Email: "reader@example.com"})

	ts.posts.On("GetByID", mock.Anything, uint(99)).
		Return(nil, models.NewNotFoundError("Post", 99))

	req := jsonRequest(t, "POST", "/api/posts/99/comments", map[string]string{
		"text": "hello",
	})
	req.AddCookie(cookie)
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	ts.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPages(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/pages/about", "/api/pages/contact"} {
		resp, err := ts.app.Test(jsonRequest(t, "GET", path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["title"])
	}
}
