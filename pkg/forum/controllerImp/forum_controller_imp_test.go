package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yashcodes29/Farm-wise/entities"
	"github.com/yashcodes29/Farm-wise/pkg/forum/repository"
	"github.com/yashcodes29/Farm-wise/pkg/forum/repositoryImp"
)

func newForumServer(t *testing.T, repo repository.ForumRepository) *echo.Echo {
	t.Helper()
	e := echo.New()
	ctrl := New(repo)
	e.GET("/api/forum-posts", ctrl.List)
	e.POST("/api/forum-posts", ctrl.Create)
	e.POST("/api/forum-posts/:id/comments", ctrl.AddComment)
	e.POST("/api/forum-posts/:postId/comments/:commentRef/reply", ctrl.AddReply)
	e.POST("/api/forum-posts/:id/like", ctrl.Like)
	return e
}

func liveRepo(t *testing.T) repository.ForumRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.ForumPost{}, &entities.Comment{}, &entities.Reply{}))
	return repositoryImp.New(db)
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestForumScenario(t *testing.T) {
	e := newForumServer(t, liveRepo(t))

	rec := do(e, http.MethodPost, "/api/forum-posts",
		`{"title":"Wheat rust spreading","author":"ravi","tags":["wheat","disease"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var post entities.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	require.NotZero(t, post.PostID)

	rec = do(e, http.MethodPost, "/api/forum-posts/1/comments",
		`{"author":"meera","comment":"Use a fungicide early."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated entities.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Replies)
	require.Len(t, updated.Comments, 1)

	rec = do(e, http.MethodPost, "/api/forum-posts/1/comments/0/reply",
		`{"author":"ravi","comment":"Which one do you use?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated.Comments, 1)
	assert.Len(t, updated.Comments[0].Replies, 1)

	rec = do(e, http.MethodPost, "/api/forum-posts/1/like", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Likes)

	rec = do(e, http.MethodGet, "/api/forum-posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []entities.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
}

func TestForumNotFound(t *testing.T) {
	e := newForumServer(t, liveRepo(t))

	rec := do(e, http.MethodPost, "/api/forum-posts/99/comments",
		`{"author":"x","comment":"y"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found")

	rec = do(e, http.MethodPost, "/api/forum-posts/99/comments/0/reply",
		`{"author":"x","comment":"y"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post or comment not found")
}

func TestForumStoreUnavailable(t *testing.T) {
	e := newForumServer(t, repositoryImp.NewDisabled())

	rec := do(e, http.MethodGet, "/api/forum-posts", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "database not configured")

	rec = do(e, http.MethodPost, "/api/forum-posts", `{"title":"t","author":"a"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
