package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/netx"
)

// SupportService reads and posts to the community support feed and uploads
// attachments through presigned URLs.
type SupportService interface {
	Messages(ctx context.Context) (*models.SupportMessagesPage, error)
	Post(ctx context.Context, content string) (*models.SupportMessage, error)
	// Upload obtains a presigned slot for the file and uploads its
	// contents, returning the storage key to reference it by.
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

type supportService struct {
	client api.Client
	upload func(ctx context.Context, url string, contentType string, file []byte) error
}

func NewSupportService(client api.Client) SupportService {
	return &supportService{client: client, upload: netx.UploadToPresignedURL}
}

func (s *supportService) Messages(ctx context.Context) (*models.SupportMessagesPage, error) {
	return s.client.SupportMessages(ctx)
}

func (s *supportService) Post(ctx context.Context, content string) (*models.SupportMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Message: "Message cannot be empty"}
	}
	return s.client.PostSupportMessage(ctx, models.PostSupportMessageRequest{Content: content})
}

func (s *supportService) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		return "", &ValidationError{Field: "file", Message: "File must have an extension"}
	}
	contentType := mime.TypeByExtension("." + ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presign, err := s.client.PresignUpload(ctx, models.PresignRequest{
		DocType:     "support",
		Extension:   ext,
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	if err := s.upload(ctx, presign.UploadURL, contentType, data); err != nil {
		return "", fmt.Errorf("uploading file: %w", err)
	}
	return presign.Key, nil
}
