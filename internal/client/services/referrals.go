package services

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// ReferralService reports the user's referral earnings and invitees.
type ReferralService interface {
	Stats(ctx context.Context) (*models.ReferralStats, error)
}

type referralService struct {
	client api.Client
}

func NewReferralService(client api.Client) ReferralService {
	return &referralService{client: client}
}

func (r *referralService) Stats(ctx context.Context) (*models.ReferralStats, error) {
	return r.client.ReferralStats(ctx)
}
