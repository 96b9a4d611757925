package services

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// PremiumService covers the agent program: verification packages, the
// user's purchases, and claimable cashback and weekly bonuses.
type PremiumService interface {
	Packages(ctx context.Context) ([]models.AgentPackage, error)
	Purchase(ctx context.Context, packageID int64) (*models.AgentPurchaseResult, error)
	Purchases(ctx context.Context) ([]models.AgentPurchase, error)
	CashbackBonuses(ctx context.Context) ([]models.CashbackBonus, error)
	WeeklyBonuses(ctx context.Context) ([]models.WeeklyBonus, error)
	ClaimCashback(ctx context.Context, bonusID int64) (*models.ClaimResult, error)
	ClaimWeekly(ctx context.Context, bonusID int64) (*models.ClaimResult, error)
}

type premiumService struct {
	client api.Client
}

func NewPremiumService(client api.Client) PremiumService {
	return &premiumService{client: client}
}

func (p *premiumService) Packages(ctx context.Context) ([]models.AgentPackage, error) {
	return p.client.AgentPackages(ctx)
}

func (p *premiumService) Purchase(ctx context.Context, packageID int64) (*models.AgentPurchaseResult, error) {
	if packageID <= 0 {
		return nil, &ValidationError{Field: "package_id", Message: "Select a package to purchase"}
	}
	return p.client.PurchaseAgentPackage(ctx, packageID)
}

func (p *premiumService) Purchases(ctx context.Context) ([]models.AgentPurchase, error) {
	return p.client.AgentPurchases(ctx)
}

func (p *premiumService) CashbackBonuses(ctx context.Context) ([]models.CashbackBonus, error) {
	return p.client.CashbackBonuses(ctx)
}

func (p *premiumService) WeeklyBonuses(ctx context.Context) ([]models.WeeklyBonus, error) {
	return p.client.WeeklyBonuses(ctx)
}

func (p *premiumService) ClaimCashback(ctx context.Context, bonusID int64) (*models.ClaimResult, error) {
	if bonusID <= 0 {
		return nil, &ValidationError{Field: "bonus_id", Message: "Select a bonus to claim"}
	}
	return p.client.ClaimCashback(ctx, bonusID)
}

func (p *premiumService) ClaimWeekly(ctx context.Context, bonusID int64) (*models.ClaimResult, error) {
	if bonusID <= 0 {
		return nil, &ValidationError{Field: "bonus_id", Message: "Select a bonus to claim"}
	}
	return p.client.ClaimWeeklyBonus(ctx, bonusID)
}
