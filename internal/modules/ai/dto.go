package ai

type RecommendationsRequest struct {
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

type InsightsRequest struct {
	Summary string `json:"summary" binding:"required"`
}
