package domain

import "time"

type ToastSeverity string

const (
	ToastInfo    ToastSeverity = "info"
	ToastSuccess ToastSeverity = "success"
	ToastWarning ToastSeverity = "warning"
)

// Toast is a transient user-facing advisory. Delivery is best-effort and
// one-way; nothing waits on it.
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  ToastSeverity `json:"severity"`
	CreatedAt time.Time     `json:"created_at"`
}
