package feed

import (
	"time"

	"nexus/internal/domain"
)

// SeedPosts returns the demo feed, mirroring the mock records the SPA
// ships with.
func SeedPosts() []*domain.Post {
	now := time.Now().UTC()
	return []*domain.Post{
		{
			ID:             "p1",
			AuthorID:       "u2",
			AuthorName:     "Sarah Chen",
			AuthorUsername: "schen_dev",
			AuthorAvatar:   "https://picsum.photos/seed/sarah/200",
			Content:        "Just finished implementing the new Gemini 3.0 API in my project! The reasoning capabilities are insane. Anyone else tried it yet? #AI #DevLife #Gemini",
			Kind:           domain.PostText,
			MediaURLs:      []string{},
			Hashtags:       []string{"#AI", "#DevLife", "#Gemini"},
			Likes:          452,
			Comments:       24,
			Reposts:        12,
			CreatedAt:      now,
		},
		{
			ID:             "p2",
			AuthorID:       "u3",
			AuthorName:     "Creative Hub",
			AuthorUsername: "creativehub",
			AuthorAvatar:   "https://picsum.photos/seed/hub/200",
			Content:        "Which color palette fits the 'Nexus' vibe better?",
			Kind:           domain.PostPoll,
			MediaURLs:      []string{},
			Hashtags:       []string{"#Design", "#UX"},
			Likes:          89,
			Comments:       56,
			Reposts:        5,
			CreatedAt:      now.Add(-1 * time.Hour),
			Poll: &domain.Poll{
				Options: []string{"Electric Blue & Slate", "Neon Purple & Black", "Sunset Orange & Gray"},
				Votes:   []int64{120, 340, 85},
			},
		},
		{
			ID:             "p3",
			AuthorID:       "u1",
			AuthorName:     "Alex Rivera",
			AuthorUsername: "arivera",
			AuthorAvatar:   "https://picsum.photos/seed/alex/200",
			Content:        "Check out this AI-generated concept art for our next VR community space.",
			Kind:           domain.PostImage,
			MediaURLs:      []string{"https://picsum.photos/seed/art/800/600"},
			Hashtags:       []string{"#VR", "#AIArt"},
			Likes:          1205,
			Comments:       88,
			Reposts:        210,
			CreatedAt:      now.Add(-2 * time.Hour),
		},
	}
}
