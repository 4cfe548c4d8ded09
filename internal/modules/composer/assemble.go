package composer

import (
	"regexp"
	"time"

	"nexus/internal/domain"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags scans body text for # tokens in order of appearance.
// Duplicates are kept and the leading # stays on the tag.
func ExtractHashtags(body string) []string {
	tags := hashtagPattern.FindAllString(body, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// assemble builds the immutable published post from a draft that passed
// every gate. Pure; no I/O.
func assemble(body string, media *MediaAttachment, author domain.User, id string, now time.Time) *domain.Post {
	kind := domain.PostText
	mediaURLs := []string{}
	if media != nil {
		kind = domain.PostVideo
		mediaURLs = append(mediaURLs, media.PreviewURL)
	}
	return &domain.Post{
		ID:             id,
		AuthorID:       author.ID,
		AuthorName:     author.Name,
		AuthorUsername: author.Username,
		AuthorAvatar:   author.Avatar,
		Content:        body,
		Kind:           kind,
		MediaURLs:      mediaURLs,
		Hashtags:       ExtractHashtags(body),
		CreatedAt:      now.UTC(),
	}
}
