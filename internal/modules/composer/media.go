package composer

import "strings"

// maxMediaBytes is the demo attachment size limit (100 MiB).
const maxMediaBytes = 100 << 20

type MediaAttachment struct {
	FileName   string `json:"file_name"`
	SizeBytes  int64  `json:"size_bytes"`
	MimeType   string `json:"mime_type"`
	PreviewURL string `json:"preview_url"`
}

// validateMedia checks size before mime kind; a rejected selection never
// enters the draft.
func validateMedia(sizeBytes int64, mimeType string) error {
	if sizeBytes > maxMediaBytes {
		return &OversizeMediaError{ActualMB: sizeBytes >> 20}
	}
	if !strings.HasPrefix(mimeType, "video/") {
		return ErrUnsupportedMediaKind
	}
	return nil
}
