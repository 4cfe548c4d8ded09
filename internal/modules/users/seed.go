package users

import "nexus/internal/domain"

func seedUsers() []domain.User {
	return []domain.User{
		{
			ID:        "u1",
			Name:      "Alex Rivera",
			Username:  "arivera",
			Email:     "alex@nexus.com",
			Avatar:    "https://picsum.photos/seed/alex/200",
			Role:      domain.RoleCreator,
			Bio:       "Digital artist & Tech enthusiast. Building the future of social networks. 🚀",
			Interests: []string{"Tech", "Design", "AI", "Gaming"},
			Followers: 12400,
			Following: 850,
			Badges:    []string{"Early Adopter", "Top Creator"},
		},
		{
			ID:        "u2",
			Name:      "Sarah Chen",
			Username:  "schen_dev",
			Email:     "sarah@nexus.com",
			Avatar:    "https://picsum.photos/seed/sarah/200",
			Role:      domain.RoleUser,
			Interests: []string{"AI", "Backend"},
			Followers: 3200,
			Following: 410,
			Badges:    []string{},
		},
		{
			ID:        "u3",
			Name:      "Creative Hub",
			Username:  "creativehub",
			Email:     "hub@nexus.com",
			Avatar:    "https://picsum.photos/seed/hub/200",
			Role:      domain.RoleCommunityManager,
			Interests: []string{"Design", "UX"},
			Followers: 54000,
			Following: 120,
			Badges:    []string{"Verified Community"},
		},
	}
}
