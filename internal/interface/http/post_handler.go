package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	postapp "github.com/mygroup/simple-community/internal/application"
	"github.com/mygroup/simple-community/internal/interface/middleware"
	"github.com/mygroup/simple-community/pkg/apperr"
	"github.com/mygroup/simple-community/pkg/response"
)

type PostHandler struct {
	Svc    *postapp.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *postapp.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Create POST /api/v1/posts (authenticated)
func (h *PostHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req postRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	view, err := h.Svc.Create(c.Request.Context(), uid, req.Title, req.Content)
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// List GET /api/v1/posts[?title=..|?author=..]
func (h *PostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		posts []postapp.PostView
		err   error
	)
	if title, ok := c.GetQuery("title"); ok {
		posts, err = h.Svc.FindAllByTitle(ctx, title)
	} else if author, ok := c.GetQuery("author"); ok {
		posts, err = h.Svc.FindAllByAuthor(ctx, author)
	} else {
		posts, err = h.Svc.FindAllDesc(ctx)
	}
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID GET /api/v1/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.Err(c, h.Logger, apperr.New(apperr.PostNotFound, "Post cannot be found"))
		return
	}
	view, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Modify PUT /api/v1/posts/:id (authenticated)
func (h *PostHandler) Modify(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := postID(c)
	if !ok {
		response.Err(c, h.Logger, apperr.New(apperr.PostNotFound, "Post cannot be found"))
		return
	}
	var req postRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	if err := h.Svc.Modify(c.Request.Context(), uid, id, req.Title, req.Content); err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Remove DELETE /api/v1/posts/:id (authenticated)
func (h *PostHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, ok := postID(c)
	if !ok {
		response.Err(c, h.Logger, apperr.New(apperr.PostNotFound, "Post cannot be found"))
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), uid, id); err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
