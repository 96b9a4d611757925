package models

// SupportMessage is one message in the community support feed.
type SupportMessage struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Image     string `json:"image,omitempty"`
	IsPinned  bool   `json:"is_pinned"`
	CreatedAt string `json:"created_at"`
}

// SupportMessagesPage is a paginated slice of the support feed.
type SupportMessagesPage struct {
	Results  []SupportMessage `json:"results"`
	Count    int              `json:"count"`
	Next     string           `json:"next,omitempty"`
	Previous string           `json:"previous,omitempty"`
}

// PostSupportMessageRequest posts a new message to the feed.
type PostSupportMessageRequest struct {
	Content string `json:"content"`
}

// PresignRequest asks the backend for a presigned upload slot for an
// attachment or document.
type PresignRequest struct {
	DocType     string `json:"doc_type"`
	Extension   string `json:"extension"`
	ContentType string `json:"content_type"`
}

// PresignResponse carries the presigned upload target. The file is PUT to
// UploadURL and referenced afterwards by Key.
type PresignResponse struct {
	UploadURL string            `json:"upload_url"`
	Fields    map[string]string `json:"fields,omitempty"`
	Key       string            `json:"key"`
}
