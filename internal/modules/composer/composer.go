package composer

import (
	"context"
	"log"
	"strings"
	"sync"

	"nexus/internal/domain"
)

const genericPolicyViolation = "This post violates community guidelines."

// Composer owns one draft post from open until publish or discard. All
// state transitions happen under c.mu; a closed composer rejects every
// mutation so late timers and verdicts cannot touch disposed state.
type Composer struct {
	mu  sync.Mutex
	svc *Service

	id            string
	body          string
	media         *MediaAttachment
	uploadState   UploadState
	uploadPercent int
	moderating    bool
	lastError     string
	closed        bool

	cancelUpload context.CancelFunc
}

func (c *Composer) ID() string { return c.id }

func (c *Composer) UpdateBody(body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.body = body
	return nil
}

// SelectMedia stages a video attachment and starts the upload simulation.
// A previous attachment is released and its upload cancelled first.
func (c *Composer) SelectMedia(req SelectMediaRequest) (*MediaAttachment, error) {
	if err := validateMedia(req.SizeBytes, req.MimeType); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	c.detachMediaLocked()
	att := &MediaAttachment{
		FileName:   req.FileName,
		SizeBytes:  req.SizeBytes,
		MimeType:   req.MimeType,
		PreviewURL: c.svc.previews.Allocate(req.FileName),
	}
	c.media = att
	c.lastError = ""
	c.startUploadLocked()
	return att, nil
}

// RemoveMedia drops the current attachment. Calling it with no attachment
// is a no-op.
func (c *Composer) RemoveMedia() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.detachMediaLocked()
	return nil
}

// detachMediaLocked cancels the upload and releases the preview handle.
// Caller holds c.mu.
func (c *Composer) detachMediaLocked() {
	c.cancelUploadLocked()
	if c.media != nil {
		c.svc.previews.Release(c.media.PreviewURL)
		c.media = nil
	}
	c.uploadState = UploadNotStarted
	c.uploadPercent = 0
}

// Submit runs the publish pipeline: guard checks, the moderation gate, and
// assembly. On success the post is handed to the publisher and the composer
// closes; on a blocked verdict the composer stays open and editable.
func (c *Composer) Submit(ctx context.Context) (*domain.Post, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if strings.TrimSpace(c.body) == "" && c.media == nil {
		c.mu.Unlock()
		return nil, ErrEmptyDraft
	}
	if c.media != nil && c.uploadState != UploadComplete {
		c.mu.Unlock()
		c.svc.notifier.Notify("Your video is still uploading.", domain.ToastWarning)
		return nil, ErrUploadInProgress
	}
	if c.moderating {
		c.mu.Unlock()
		return nil, ErrModerationInProgress
	}
	c.moderating = true
	c.lastError = ""
	body := c.body
	c.mu.Unlock()

	c.svc.notifier.Notify("Checking content safety...", domain.ToastInfo)

	verdict, err := c.svc.moderator.ModerateContent(ctx, body)
	if err != nil {
		// Fail-open: a moderation outage must never block legitimate
		// posts, so a transport failure counts as a safe verdict. This
		// deliberately trades strict safety for availability on
		// infrastructure errors; flagged verdicts are unaffected.
		log.Printf("moderation call failed, failing open: %v", err)
		verdict = Verdict{Safe: true, Sentiment: "neutral"}
	}

	c.mu.Lock()
	c.moderating = false
	if c.closed {
		// Closed while the verdict was in flight; discard the result.
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if !verdict.Safe {
		reason := verdict.Reason
		if reason == "" {
			reason = genericPolicyViolation
		}
		c.lastError = reason
		c.mu.Unlock()
		c.svc.notifier.Notify("Your post was blocked by the content filter.", domain.ToastWarning)
		return nil, &BlockedError{Reason: reason}
	}

	author := c.svc.users.Acting()
	post := assemble(body, c.media, author, c.svc.newID(), c.svc.now())
	c.detachMediaLocked()
	c.closed = true
	c.mu.Unlock()

	c.svc.publisher.Publish(post)
	c.svc.notifier.Notify("Post published successfully!", domain.ToastSuccess)
	return post, nil
}

// Close discards the draft, cancelling any upload and releasing the preview
// handle. It is idempotent.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.detachMediaLocked()
	c.closed = true
}

// State returns a snapshot for the client.
func (c *Composer) State() StateResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StateResponse{
		ID:            c.id,
		Body:          c.body,
		Media:         c.media,
		UploadState:   c.uploadState,
		UploadPercent: c.uploadPercent,
		Moderating:    c.moderating,
		LastError:     c.lastError,
	}
}
