// Package api contains the REST transport for the GrandV backend: a Client
// interface consumed by the application services and its concrete HTTP
// implementation.
package api

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// Client is the full backend surface used by the CLI.
//
// Contract:
//   - Login/Register return the credential pair on success and an *APIError
//     with a normalized human-readable message on backend rejection.
//   - SetToken attaches (or, with "", detaches) the bearer token sent on
//     subsequent requests. Only the auth service calls it.
//   - All methods honor context cancellation/timeouts.
type Client interface {
	SetToken(token string)

	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ReferralStats(ctx context.Context) (*models.ReferralStats, error)

	Wallet(ctx context.Context) (*models.WalletBalance, error)
	Deposit(ctx context.Context, req models.DepositRequest) (*models.DepositResult, error)
	WithdrawMain(ctx context.Context, req models.WithdrawRequest) (*models.WithdrawResult, error)
	WithdrawReferral(ctx context.Context, req models.WithdrawRequest) (*models.WithdrawResult, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)

	Packages(ctx context.Context) (*models.PackagesResponse, error)
	PurchasePackage(ctx context.Context, packageID int64) (*models.PurchasePackageResult, error)
	Purchases(ctx context.Context) ([]models.Purchase, error)

	Adverts(ctx context.Context) (*models.AdvertsResponse, error)
	DownloadAdvert(ctx context.Context, advertID int64) ([]byte, error)
	SubmitAdvert(ctx context.Context, req models.SubmitAdvertRequest) (*models.Submission, error)
	Submissions(ctx context.Context) (*models.SubmissionsResponse, error)

	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	AllProducts(ctx context.Context) ([]models.Product, error)
	Orders(ctx context.Context) ([]models.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
	TrackOrder(ctx context.Context, orderID int64) (*models.TrackingInfo, error)
	ConfirmDelivery(ctx context.Context, orderID int64) error
	RateOrder(ctx context.Context, orderID int64, rating int) error

	AgentPackages(ctx context.Context) ([]models.AgentPackage, error)
	PurchaseAgentPackage(ctx context.Context, packageID int64) (*models.AgentPurchaseResult, error)
	AgentPurchases(ctx context.Context) ([]models.AgentPurchase, error)
	CashbackBonuses(ctx context.Context) ([]models.CashbackBonus, error)
	WeeklyBonuses(ctx context.Context) ([]models.WeeklyBonus, error)
	ClaimCashback(ctx context.Context, bonusID int64) (*models.ClaimResult, error)
	ClaimWeeklyBonus(ctx context.Context, bonusID int64) (*models.ClaimResult, error)

	LipaRegister(ctx context.Context, req models.LipaRegisterRequest) (*models.LipaRegistration, error)
	LipaRegistration(ctx context.Context) (*models.LipaRegistration, error)
	InstallmentOrders(ctx context.Context) ([]models.InstallmentOrder, error)
	PayInstallment(ctx context.Context, req models.InstallmentPaymentRequest) (*models.InstallmentPaymentResult, error)

	SupportMessages(ctx context.Context) (*models.SupportMessagesPage, error)
	PostSupportMessage(ctx context.Context, req models.PostSupportMessageRequest) (*models.SupportMessage, error)
	PresignUpload(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error)
}
