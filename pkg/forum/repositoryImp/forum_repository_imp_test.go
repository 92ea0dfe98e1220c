package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yashcodes29/Farm-wise/entities"
	"github.com/yashcodes29/Farm-wise/pkg/forum/repository"
)

func newTestRepo(t *testing.T) repository.ForumRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.ForumPost{}, &entities.Comment{}, &entities.Reply{}))
	return New(db)
}

func TestCreateAndList(t *testing.T) {
	repo := newTestRepo(t)

	first := &entities.ForumPost{Title: "Wheat rust", Author: "ravi", Tags: []string{"disease", "wheat"}}
	require.NoError(t, repo.Create(first))
	second := &entities.ForumPost{Title: "Drip irrigation tips", Author: "meera", Tags: []string{"water"}}
	require.NoError(t, repo.Create(second))

	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, []string{"disease", "wheat"}, firstByID(posts, first.PostID).Tags)
}

func firstByID(posts []entities.ForumPost, id uint) *entities.ForumPost {
	for i := range posts {
		if posts[i].PostID == id {
			return &posts[i]
		}
	}
	return nil
}

func TestAddCommentIncrementsReplyCount(t *testing.T) {
	repo := newTestRepo(t)

	post := &entities.ForumPost{Title: "Soil pH", Author: "ravi"}
	require.NoError(t, repo.Create(post))
	assert.Equal(t, 0, post.Replies)

	updated, err := repo.AddComment(post.PostID, "meera", "Test your soil first.")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, 1, updated.Replies, "comment count derived field moves by exactly one")
	assert.NotEmpty(t, updated.Comments[0].CommentID, "comments get stable ids at creation")

	updated, err = repo.AddComment(post.PostID, "arjun", "Lime helps on acidic soil.")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Replies)
}

func TestAddReplyByIDAndByIndex(t *testing.T) {
	repo := newTestRepo(t)

	post := &entities.ForumPost{Title: "Pest control", Author: "ravi"}
	require.NoError(t, repo.Create(post))
	withFirst, err := repo.AddComment(post.PostID, "meera", "Neem oil works.")
	require.NoError(t, err)
	withBoth, err := repo.AddComment(post.PostID, "arjun", "Try pheromone traps.")
	require.NoError(t, err)
	require.Len(t, withBoth.Comments, 2)

	t.Run("reply by comment id", func(t *testing.T) {
		target := withFirst.Comments[0]
		updated, err := repo.AddReply(post.PostID, target.CommentID, "ravi", "How often do you spray?")
		require.NoError(t, err)
		assert.Len(t, updated.Comments[0].Replies, 1)
		assert.Len(t, updated.Comments[1].Replies, 0, "other comments untouched")
	})

	t.Run("reply by legacy positional index", func(t *testing.T) {
		updated, err := repo.AddReply(post.PostID, "0", "meera", "Weekly, in the evening.")
		require.NoError(t, err)
		assert.Len(t, updated.Comments[0].Replies, 2, "index 0 resolves to the oldest comment")
		assert.Len(t, updated.Comments[1].Replies, 0)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := repo.AddReply(post.PostID, "5", "x", "y")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("unknown comment id", func(t *testing.T) {
		_, err := repo.AddReply(post.PostID, "no-such-comment", "x", "y")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestLike(t *testing.T) {
	repo := newTestRepo(t)

	post := &entities.ForumPost{Title: "Harvest timing", Author: "ravi"}
	require.NoError(t, repo.Create(post))

	updated, err := repo.Like(post.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)

	updated, err = repo.Like(post.PostID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Likes)

	_, err = repo.Like(9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNotFoundPaths(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddComment(42, "x", "y")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.AddReply(42, "0", "x", "y")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDisabledRepo(t *testing.T) {
	repo := NewDisabled()

	_, err := repo.List()
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	err = repo.Create(&entities.ForumPost{Title: "t"})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = repo.AddComment(1, "a", "b")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}
