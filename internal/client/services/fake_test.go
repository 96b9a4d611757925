package services

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// fakeClient implements api.Client with overridable funcs and call counters.
type fakeClient struct {
	token string

	loginFn    func(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	registerFn func(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	loginCalls    int
	registerCalls int
	depositCalls  int
	withdrawCalls int
	purchaseCalls int
	payCalls      int
	postCalls     int
	presignCalls  int
	submitCalls   int
	agentBuyCalls int
	claimCalls    int
	rateCalls     int
	cancelCalls   int
	confirmCalls  int
	updateCalls   int
	passwdCalls   int

	lastRegister models.RegisterRequest
	lastSubmit   models.SubmitAdvertRequest
	lastRating   int
	presignFn    func(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error)
	updateFn     func(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
}

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.loginCalls++
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return &models.AuthResponse{Token: "tok", User: models.User{Username: req.Username}}, nil
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.registerCalls++
	f.lastRegister = req
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return &models.AuthResponse{Token: "tok", User: models.User{Username: req.Username, ReferralCode: "NEW123"}}, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	f.updateCalls++
	if f.updateFn != nil {
		return f.updateFn(ctx, req)
	}
	return &models.User{Username: req.Username}, nil
}

func (f *fakeClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	f.passwdCalls++
	return nil
}

func (f *fakeClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{}, nil
}

func (f *fakeClient) ReferralStats(ctx context.Context) (*models.ReferralStats, error) {
	return &models.ReferralStats{}, nil
}

func (f *fakeClient) Wallet(ctx context.Context) (*models.WalletBalance, error) {
	return &models.WalletBalance{}, nil
}

func (f *fakeClient) Deposit(ctx context.Context, req models.DepositRequest) (*models.DepositResult, error) {
	f.depositCalls++
	return &models.DepositResult{}, nil
}

func (f *fakeClient) WithdrawMain(ctx context.Context, req models.WithdrawRequest) (*models.WithdrawResult, error) {
	f.withdrawCalls++
	return &models.WithdrawResult{}, nil
}

func (f *fakeClient) WithdrawReferral(ctx context.Context, req models.WithdrawRequest) (*models.WithdrawResult, error) {
	f.withdrawCalls++
	return &models.WithdrawResult{}, nil
}

func (f *fakeClient) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return nil, nil
}

func (f *fakeClient) Packages(ctx context.Context) (*models.PackagesResponse, error) {
	return &models.PackagesResponse{}, nil
}

func (f *fakeClient) PurchasePackage(ctx context.Context, packageID int64) (*models.PurchasePackageResult, error) {
	f.purchaseCalls++
	return &models.PurchasePackageResult{}, nil
}

func (f *fakeClient) Purchases(ctx context.Context) ([]models.Purchase, error) {
	return nil, nil
}

func (f *fakeClient) Adverts(ctx context.Context) (*models.AdvertsResponse, error) {
	return &models.AdvertsResponse{}, nil
}

func (f *fakeClient) DownloadAdvert(ctx context.Context, advertID int64) ([]byte, error) {
	return []byte("data"), nil
}

func (f *fakeClient) SubmitAdvert(ctx context.Context, req models.SubmitAdvertRequest) (*models.Submission, error) {
	f.submitCalls++
	f.lastSubmit = req
	return &models.Submission{ID: 1, Status: "pending"}, nil
}

func (f *fakeClient) Submissions(ctx context.Context) (*models.SubmissionsResponse, error) {
	return &models.SubmissionsResponse{}, nil
}

func (f *fakeClient) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeClient) AllProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeClient) Orders(ctx context.Context) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeClient) CancelOrder(ctx context.Context, orderID int64) error {
	f.cancelCalls++
	return nil
}

func (f *fakeClient) TrackOrder(ctx context.Context, orderID int64) (*models.TrackingInfo, error) {
	return &models.TrackingInfo{Status: "shipped"}, nil
}

func (f *fakeClient) ConfirmDelivery(ctx context.Context, orderID int64) error {
	f.confirmCalls++
	return nil
}

func (f *fakeClient) RateOrder(ctx context.Context, orderID int64, rating int) error {
	f.rateCalls++
	f.lastRating = rating
	return nil
}

func (f *fakeClient) AgentPackages(ctx context.Context) ([]models.AgentPackage, error) {
	return nil, nil
}

func (f *fakeClient) PurchaseAgentPackage(ctx context.Context, packageID int64) (*models.AgentPurchaseResult, error) {
	f.agentBuyCalls++
	return &models.AgentPurchaseResult{}, nil
}

func (f *fakeClient) AgentPurchases(ctx context.Context) ([]models.AgentPurchase, error) {
	return nil, nil
}

func (f *fakeClient) CashbackBonuses(ctx context.Context) ([]models.CashbackBonus, error) {
	return nil, nil
}

func (f *fakeClient) WeeklyBonuses(ctx context.Context) ([]models.WeeklyBonus, error) {
	return nil, nil
}

func (f *fakeClient) ClaimCashback(ctx context.Context, bonusID int64) (*models.ClaimResult, error) {
	f.claimCalls++
	return &models.ClaimResult{}, nil
}

func (f *fakeClient) ClaimWeeklyBonus(ctx context.Context, bonusID int64) (*models.ClaimResult, error) {
	f.claimCalls++
	return &models.ClaimResult{}, nil
}

func (f *fakeClient) LipaRegister(ctx context.Context, req models.LipaRegisterRequest) (*models.LipaRegistration, error) {
	return &models.LipaRegistration{Status: "pending"}, nil
}

func (f *fakeClient) LipaRegistration(ctx context.Context) (*models.LipaRegistration, error) {
	return nil, nil
}

func (f *fakeClient) InstallmentOrders(ctx context.Context) ([]models.InstallmentOrder, error) {
	return nil, nil
}

func (f *fakeClient) PayInstallment(ctx context.Context, req models.InstallmentPaymentRequest) (*models.InstallmentPaymentResult, error) {
	f.payCalls++
	return &models.InstallmentPaymentResult{}, nil
}

func (f *fakeClient) SupportMessages(ctx context.Context) (*models.SupportMessagesPage, error) {
	return &models.SupportMessagesPage{}, nil
}

func (f *fakeClient) PostSupportMessage(ctx context.Context, req models.PostSupportMessageRequest) (*models.SupportMessage, error) {
	f.postCalls++
	return &models.SupportMessage{Content: req.Content}, nil
}

func (f *fakeClient) PresignUpload(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error) {
	f.presignCalls++
	if f.presignFn != nil {
		return f.presignFn(ctx, req)
	}
	return &models.PresignResponse{UploadURL: "https://storage/upload", Key: "support/file"}, nil
}
