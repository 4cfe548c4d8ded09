package composer

import (
	"context"
	"time"

	"nexus/internal/domain"
)

// Verdict is the moderation outcome for a draft body.
type Verdict struct {
	Safe      bool
	Reason    string
	Sentiment string
}

// Moderator classifies a post body before publication.
type Moderator interface {
	ModerateContent(ctx context.Context, content string) (Verdict, error)
}

// Publisher receives ownership of assembled posts; the feed implements it.
type Publisher interface {
	Publish(post *domain.Post)
}

// Notifier is a fire-and-forget advisory sink.
type Notifier interface {
	Notify(message string, severity domain.ToastSeverity)
}

// UserProvider supplies the acting-user snapshot at submission time.
type UserProvider interface {
	Acting() domain.User
}

// Clock creates tickers, so upload progression is testable without
// wall-clock timers.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}
