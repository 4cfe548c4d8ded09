package composer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/composer")
	{
		grp.POST("", h.Open)
		grp.GET("/:id", h.GetState)
		grp.PATCH("/:id", h.UpdateBody)
		grp.POST("/:id/media", h.SelectMedia)
		grp.DELETE("/:id/media", h.RemoveMedia)
		grp.POST("/:id/submit", h.Submit)
		grp.DELETE("/:id", h.Close)
	}
}

func (h *Handler) Open(c *gin.Context) {
	id := h.service.Open()
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) GetState(c *gin.Context) {
	state, err := h.service.State(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"composer": state})
}

func (h *Handler) UpdateBody(c *gin.Context) {
	var req UpdateBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.UpdateBody(c.Param("id"), req.Body); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) SelectMedia(c *gin.Context) {
	var req SelectMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	att, err := h.service.SelectMedia(c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"media": att})
}

func (h *Handler) RemoveMedia(c *gin.Context) {
	if err := h.service.RemoveMedia(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) Submit(c *gin.Context) {
	post, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) Close(c *gin.Context) {
	if err := h.service.Close(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var oversize *OversizeMediaError
	var blocked *BlockedError

	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "COMPOSER_NOT_FOUND", "Composer not found")
	case errors.Is(err, ErrClosed):
		response.Error(c, http.StatusConflict, "COMPOSER_CLOSED", "Composer is already closed")
	case errors.Is(err, ErrEmptyDraft):
		response.Error(c, http.StatusBadRequest, "EMPTY_DRAFT", "Add some text or a video before posting")
	case errors.As(err, &oversize):
		response.Error(c, http.StatusBadRequest, "MEDIA_TOO_LARGE", oversize.Error())
	case errors.Is(err, ErrUnsupportedMediaKind):
		response.Error(c, http.StatusBadRequest, "UNSUPPORTED_MEDIA_KIND", "Only video files can be attached")
	case errors.Is(err, ErrUploadInProgress):
		response.Error(c, http.StatusConflict, "UPLOAD_IN_PROGRESS", "Your video is still uploading")
	case errors.Is(err, ErrModerationInProgress):
		response.Error(c, http.StatusConflict, "MODERATION_IN_PROGRESS", "Your post is already being checked")
	case errors.As(err, &blocked):
		response.Error(c, http.StatusUnprocessableEntity, "CONTENT_BLOCKED",
			"Your post violates community guidelines: "+blocked.Reason)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
	}
}
