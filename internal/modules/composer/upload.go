package composer

import (
	"context"
	"time"
)

type UploadState string

const (
	UploadNotStarted UploadState = "not_started"
	UploadInProgress UploadState = "in_progress"
	UploadComplete   UploadState = "complete"
)

const (
	defaultUploadTick = 400 * time.Millisecond
	uploadStepMin     = 5
	uploadStepMax     = 19
)

// startUploadLocked begins the simulated upload for the current attachment.
// Any previous upload is cancelled first, so a composer never has more than
// one live ticker. Caller holds c.mu.
func (c *Composer) startUploadLocked() {
	c.cancelUploadLocked()
	c.uploadState = UploadInProgress
	c.uploadPercent = 0

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelUpload = cancel
	t := c.svc.clock.NewTicker(c.svc.tick)
	go c.runUpload(ctx, t)
}

// cancelUploadLocked stops the in-flight upload loop, if any. Caller holds
// c.mu.
func (c *Composer) cancelUploadLocked() {
	if c.cancelUpload != nil {
		c.cancelUpload()
		c.cancelUpload = nil
	}
}

func (c *Composer) runUpload(ctx context.Context, t Ticker) {
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			if c.advanceUpload(ctx) {
				return
			}
		}
	}
}

// advanceUpload applies one tick and reports whether the loop should stop.
// A tick that lost the race with cancellation or close must not touch state:
// the attachment it belonged to may already be gone.
func (c *Composer) advanceUpload(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil || c.closed || c.uploadState != UploadInProgress {
		return true
	}

	c.uploadPercent += c.svc.step()
	if c.uploadPercent >= 100 {
		c.uploadPercent = 100
		c.uploadState = UploadComplete
		c.cancelUploadLocked()
		return true
	}
	return false
}
