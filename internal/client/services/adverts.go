package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/filex"
)

const downloadDirName = "downloads"

// AdvertService lists the day's adverts, saves their files locally and
// reports the user's submission history.
type AdvertService interface {
	List(ctx context.Context) (*models.AdvertsResponse, error)
	// Download fetches the advert file and writes it under the local
	// downloads directory, returning the saved path.
	Download(ctx context.Context, advert models.Advert) (string, error)
	// Submit claims views for a shared advert, attaching a screenshot as
	// proof. The claim is validated locally before any request is issued.
	Submit(ctx context.Context, req models.SubmitAdvertRequest) (*models.Submission, error)
	Submissions(ctx context.Context) (*models.SubmissionsResponse, error)
}

type advertService struct {
	client api.Client
}

func NewAdvertService(client api.Client) AdvertService {
	return &advertService{client: client}
}

func (a *advertService) List(ctx context.Context) (*models.AdvertsResponse, error) {
	return a.client.Adverts(ctx)
}

func (a *advertService) Download(ctx context.Context, advert models.Advert) (string, error) {
	data, err := a.client.DownloadAdvert(ctx, advert.ID)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureSubDir(downloadDirName)
	if err != nil {
		return "", fmt.Errorf("preparing download directory: %w", err)
	}

	name := filepath.Base(advert.File)
	if name == "." || name == "/" || name == "" {
		name = fmt.Sprintf("advert-%d", advert.ID)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("saving advert file: %w", err)
	}
	return path, nil
}

func (a *advertService) Submit(ctx context.Context, req models.SubmitAdvertRequest) (*models.Submission, error) {
	if req.AdvertID <= 0 {
		return nil, &ValidationError{Field: "advert_id", Message: "Advert id must be positive"}
	}
	if req.ViewsCount < 1 {
		return nil, &ValidationError{Field: "views_count", Message: "Views count must be at least 1"}
	}
	if len(req.Screenshot) == 0 {
		return nil, &ValidationError{Field: "screenshot", Message: "A screenshot is required as proof of views"}
	}
	return a.client.SubmitAdvert(ctx, req)
}

func (a *advertService) Submissions(ctx context.Context) (*models.SubmissionsResponse, error) {
	return a.client.Submissions(ctx)
}
