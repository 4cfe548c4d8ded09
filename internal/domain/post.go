package domain

import "time"

type PostKind string

const (
	PostText  PostKind = "text"
	PostImage PostKind = "image"
	PostVideo PostKind = "video"
	PostPoll  PostKind = "poll"
)

// Poll attaches vote options to a poll-kind post.
type Poll struct {
	Options []string `json:"options"`
	Votes   []int64  `json:"votes"`
}

// Post is a published feed entry. Author fields are a snapshot taken at
// publication time and are never re-synced with the user's profile.
type Post struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	AuthorUsername string    `json:"author_username"`
	AuthorAvatar   string    `json:"author_avatar"`
	Content        string    `json:"content"`
	Kind           PostKind  `json:"type"`
	MediaURLs      []string  `json:"media_urls"`
	Hashtags       []string  `json:"hashtags"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	Reposts        int64     `json:"reposts"`
	CreatedAt      time.Time `json:"created_at"`
	CommunityID    string    `json:"community_id,omitempty"`
	Poll           *Poll     `json:"poll,omitempty"`
}
