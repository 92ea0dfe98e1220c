package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yashcodes29/Farm-wise/entities"
	"github.com/yashcodes29/Farm-wise/pkg/forum/repository"
)

type ForumCtrl struct{ repo repository.ForumRepository }

func New(repo repository.ForumRepository) *ForumCtrl { return &ForumCtrl{repo} }

type createPostReq struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

type commentReq struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
}

func (h *ForumCtrl) List(c echo.Context) error {
	posts, err := h.repo.List()
	if err != nil {
		return storeErr(c, err, "Failed to fetch posts")
	}
	if posts == nil {
		posts = []entities.ForumPost{}
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *ForumCtrl) Create(c echo.Context) error {
	var req createPostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	post := &entities.ForumPost{Title: req.Title, Author: req.Author, Tags: req.Tags}
	if err := h.repo.Create(post); err != nil {
		return storeErr(c, err, "Failed to create post")
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *ForumCtrl) AddComment(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid post id"})
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	post, err := h.repo.AddComment(id, req.Author, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
		}
		return storeErr(c, err, "Failed to post comment")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *ForumCtrl) AddReply(c echo.Context) error {
	id, err := parseID(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid post id"})
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	post, err := h.repo.AddReply(id, c.Param("commentRef"), req.Author, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post or comment not found"})
		}
		return storeErr(c, err, "Failed to reply to comment")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *ForumCtrl) Like(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid post id"})
	}
	post, err := h.repo.Like(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
		}
		return storeErr(c, err, "Failed to like post")
	}
	return c.JSON(http.StatusOK, post)
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}

func storeErr(c echo.Context, err error, msg string) error {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": repository.ErrStoreUnavailable.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}
