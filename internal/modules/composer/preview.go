package composer

import (
	"sync"

	"github.com/google/uuid"
)

// PreviewRegistry issues revocable preview handles for staged media, the
// server-side analog of browser blob URLs. Every allocated handle must be
// released on the path that drops the attachment: removal, replacement,
// composer close, or successful submission.
type PreviewRegistry struct {
	mu     sync.Mutex
	active map[string]string // preview URL -> file name
}

func NewPreviewRegistry() *PreviewRegistry {
	return &PreviewRegistry{active: make(map[string]string)}
}

func (r *PreviewRegistry) Allocate(fileName string) string {
	url := "blob:nexus/" + uuid.NewString()
	r.mu.Lock()
	r.active[url] = fileName
	r.mu.Unlock()
	return url
}

// Release is idempotent; revoking an unknown handle is a no-op.
func (r *PreviewRegistry) Release(url string) {
	r.mu.Lock()
	delete(r.active, url)
	r.mu.Unlock()
}

func (r *PreviewRegistry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
