package services

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// DashboardService covers the account dashboard: aggregate stats, the
// product catalogue, the user's order history and per-order actions.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	AllProducts(ctx context.Context) ([]models.Product, error)
	Orders(ctx context.Context) ([]models.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
	TrackOrder(ctx context.Context, orderID int64) (*models.TrackingInfo, error)
	ConfirmDelivery(ctx context.Context, orderID int64) error
	// RateOrder rates a delivered order from 1 to 5 stars.
	RateOrder(ctx context.Context, orderID int64, rating int) error
}

type dashboardService struct {
	client api.Client
}

func NewDashboardService(client api.Client) DashboardService {
	return &dashboardService{client: client}
}

func (d *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return d.client.DashboardStats(ctx)
}

func (d *dashboardService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return d.client.FeaturedProducts(ctx)
}

func (d *dashboardService) AllProducts(ctx context.Context) ([]models.Product, error) {
	return d.client.AllProducts(ctx)
}

func (d *dashboardService) Orders(ctx context.Context) ([]models.Order, error) {
	return d.client.Orders(ctx)
}

func (d *dashboardService) CancelOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return &ValidationError{Field: "order_id", Message: "Order id must be positive"}
	}
	return d.client.CancelOrder(ctx, orderID)
}

func (d *dashboardService) TrackOrder(ctx context.Context, orderID int64) (*models.TrackingInfo, error) {
	if orderID <= 0 {
		return nil, &ValidationError{Field: "order_id", Message: "Order id must be positive"}
	}
	return d.client.TrackOrder(ctx, orderID)
}

func (d *dashboardService) ConfirmDelivery(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return &ValidationError{Field: "order_id", Message: "Order id must be positive"}
	}
	return d.client.ConfirmDelivery(ctx, orderID)
}

func (d *dashboardService) RateOrder(ctx context.Context, orderID int64, rating int) error {
	if orderID <= 0 {
		return &ValidationError{Field: "order_id", Message: "Order id must be positive"}
	}
	if rating < 1 || rating > 5 {
		return &ValidationError{Field: "rating", Message: "Rating must be between 1 and 5"}
	}
	return d.client.RateOrder(ctx, orderID, rating)
}
