package repositoryImp

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yashcodes29/Farm-wise/entities"
	"github.com/yashcodes29/Farm-wise/pkg/forum/repository"
)

type forumRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ForumRepository { return &forumRepo{db} }

func byCreation(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }

func (r *forumRepo) List() ([]entities.ForumPost, error) {
	var posts []entities.ForumPost
	err := r.db.
		Preload("Comments", byCreation).
		Preload("Comments.Replies", byCreation).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *forumRepo) Create(post *entities.ForumPost) error {
	return r.db.Create(post).Error
}

func (r *forumRepo) get(postID uint) (*entities.ForumPost, error) {
	var post entities.ForumPost
	err := r.db.
		Preload("Comments", byCreation).
		Preload("Comments.Replies", byCreation).
		First(&post, "post_id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *forumRepo) AddComment(postID uint, author, text string) (*entities.ForumPost, error) {
	if err := r.exists(postID); err != nil {
		return nil, err
	}
	cm := entities.Comment{
		CommentID: uuid.NewString(),
		PostID:    postID,
		Author:    author,
		Text:      text,
	}
	if err := r.db.Create(&cm).Error; err != nil {
		return nil, err
	}
	// replies mirrors the comment count for the dashboard's post list
	sub := r.db.Model(&entities.Comment{}).Select("count(*)").Where("post_id = ?", postID)
	if err := r.db.Model(&entities.ForumPost{}).
		Where("post_id = ?", postID).
		UpdateColumn("replies", sub).Error; err != nil {
		return nil, err
	}
	return r.get(postID)
}

func (r *forumRepo) AddReply(postID uint, commentRef, author, text string) (*entities.ForumPost, error) {
	cm, err := r.resolveComment(postID, commentRef)
	if err != nil {
		return nil, err
	}
	rp := entities.Reply{
		ReplyID:   uuid.NewString(),
		CommentID: cm.CommentID,
		Author:    author,
		Text:      text,
	}
	if err := r.db.Create(&rp).Error; err != nil {
		return nil, err
	}
	return r.get(postID)
}

func (r *forumRepo) Like(postID uint) (*entities.ForumPost, error) {
	res := r.db.Model(&entities.ForumPost{}).
		Where("post_id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.get(postID)
}

func (r *forumRepo) exists(postID uint) error {
	var n int64
	if err := r.db.Model(&entities.ForumPost{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *forumRepo) resolveComment(postID uint, ref string) (*entities.Comment, error) {
	var cm entities.Comment

	if idx, err := strconv.Atoi(ref); err == nil {
		// legacy positional addressing
		var cms []entities.Comment
		if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&cms).Error; err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(cms) {
			return nil, repository.ErrNotFound
		}
		return &cms[idx], nil
	}

	err := r.db.First(&cm, "comment_id = ? AND post_id = ?", ref, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cm, nil
}
