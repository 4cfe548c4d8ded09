package ai

import (
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
	grp := rg.Group("/ai")
	{
		grp.POST("/recommendations", h.Recommendations)
		grp.POST("/insights", h.Insights)
	}
}

func (h *Handler) Recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	recs := h.service.RecommendCommunities(c.Request.Context(), req.Bio, req.Interests)
	response.Success(c, http.StatusOK, gin.H{"recommendations": recs})
}

func (h *Handler) Insights(c *gin.Context) {
	var req InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	insight, err := h.service.ExplainAnalytics(c.Request.Context(), req.Summary)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "AI_UNAVAILABLE", "Failed to generate insights")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"insight": insight})
}
