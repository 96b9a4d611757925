package services

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// PackageService lists advertising packages and handles purchases.
type PackageService interface {
	List(ctx context.Context) (*models.PackagesResponse, error)
	Purchase(ctx context.Context, packageID int64) (*models.PurchasePackageResult, error)
	Purchases(ctx context.Context) ([]models.Purchase, error)
}

type packageService struct {
	client api.Client
}

func NewPackageService(client api.Client) PackageService {
	return &packageService{client: client}
}

func (p *packageService) List(ctx context.Context) (*models.PackagesResponse, error) {
	return p.client.Packages(ctx)
}

func (p *packageService) Purchase(ctx context.Context, packageID int64) (*models.PurchasePackageResult, error) {
	if packageID <= 0 {
		return nil, &ValidationError{Field: "package_id", Message: "Select a package to purchase"}
	}
	return p.client.PurchasePackage(ctx, packageID)
}

func (p *packageService) Purchases(ctx context.Context) ([]models.Purchase, error) {
	return p.client.Purchases(ctx)
}
