package composer

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("composer not found")
	ErrClosed               = errors.New("composer is closed")
	ErrEmptyDraft           = errors.New("draft has no content")
	ErrUploadInProgress     = errors.New("upload still in progress")
	ErrModerationInProgress = errors.New("moderation already in flight")
	ErrUnsupportedMediaKind = errors.New("only video attachments are supported")
)

// OversizeMediaError rejects a selection above the attachment size limit.
type OversizeMediaError struct {
	ActualMB int64
}

func (e *OversizeMediaError) Error() string {
	return fmt.Sprintf("video size %dMB exceeds %dMB limit", e.ActualMB, maxMediaBytes>>20)
}

// BlockedError is a moderation rejection. Reason is user-facing.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("post blocked by content moderation: %s", e.Reason)
}
