package feed

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/internal/pkg/response"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/posts")
	{
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
		grp.POST("/:id/like", h.Like)
		grp.POST("/:id/repost", h.Repost)
	}
}

func (h *Handler) List(c *gin.Context) {
	posts := h.store.List(c.Query("tag"))
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) Get(c *gin.Context) {
	post, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Like(c *gin.Context) {
	post, err := h.store.Like(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Repost(c *gin.Context) {
	post, err := h.store.Repost(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrPostNotFound) {
		response.Error(c, http.StatusNotFound, "POST_NOT_FOUND", "Post not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
}
