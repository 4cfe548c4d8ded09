package users

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
	grp := rg.Group("/users")
	{
		grp.GET("/me", h.Me)
		grp.GET("/:username", h.GetByUsername)
	}
}

func (h *Handler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"user": h.service.Acting()})
}

func (h *Handler) GetByUsername(c *gin.Context) {
	u, err := h.service.GetByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}
