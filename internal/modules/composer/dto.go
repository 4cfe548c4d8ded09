package composer

type SelectMediaRequest struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes" binding:"required"`
	MimeType  string `json:"mime_type" binding:"required"`
}

type UpdateBodyRequest struct {
	Body string `json:"body"`
}

type StateResponse struct {
	ID            string           `json:"id"`
	Body          string           `json:"body"`
	Media         *MediaAttachment `json:"media,omitempty"`
	UploadState   UploadState      `json:"upload_state"`
	UploadPercent int              `json:"upload_percent"`
	Moderating    bool             `json:"moderating"`
	LastError     string           `json:"last_error,omitempty"`
}
