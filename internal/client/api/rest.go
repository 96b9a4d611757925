package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/common"
)

// RESTClient talks JSON over HTTP to the GrandV backend. A single instance
// is shared by all services; the token field is written only by the auth
// service from the UI event flow, so no locking is needed.
type RESTClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewRESTClient constructs a client for the given API base URL
// (e.g. "https://grandview-shop.onrender.com/api"). A zero timeout means
// no client-side request deadline.
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken attaches the bearer token to subsequent requests. An empty string
// detaches it.
func (c *RESTClient) SetToken(token string) {
	c.token = token
}

// do issues one JSON request. body (if non-nil) is marshalled into the
// request; out (if non-nil) receives the decoded success body. Non-2xx
// responses are normalized into *APIError using fallback as the last-resort
// message; transport and decode failures wrap fallback too.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    normalizeErrorBody(data, fallback),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: invalid response: %w", fallback, err)
		}
	}
	return nil
}

// normalizeErrorBody derives a user-facing message from a backend error body.
// Priority: top-level "error" string, then flattened field-validation
// messages joined with ", " (keys sorted for determinism), then fallback.
func normalizeErrorBody(data []byte, fallback string) string {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || len(m) == 0 {
		return fallback
	}

	if v, ok := m["error"].(string); ok && v != "" {
		return v
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		case []any:
			for _, e := range v {
				if s := fmt.Sprint(e); s != "" {
					parts = append(parts, s)
				}
			}
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

func (c *RESTClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/accounts/login/", req, &out, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// registerPayload duplicates the password into password2, which the backend
// requires for confirmation.
type registerPayload struct {
	models.RegisterRequest
	Password2 string `json:"password2"`
}

func (c *RESTClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	payload := registerPayload{RegisterRequest: req, Password2: req.Password}
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/accounts/register/", payload, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile sends only the fields set in req; the backend patches the
// rest in place and returns the refreshed user.
func (c *RESTClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPatch, "/accounts/users/update/", req, &out, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/accounts/users/change-password/", req, nil, "Failed to change password")
}

func (c *RESTClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/accounts/users/dashboard-stats/", nil, &out, "Failed to load dashboard stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ReferralStats(ctx context.Context) (*models.ReferralStats, error) {
	var out models.ReferralStats
	if err := c.do(ctx, http.MethodGet, "/accounts/users/referral-stats/", nil, &out, "Failed to load referral stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Wallet(ctx context.Context) (*models.WalletBalance, error) {
	var out models.WalletBalance
	if err := c.do(ctx, http.MethodGet, "/wallet/", nil, &out, "Failed to load wallet"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Deposit(ctx context.Context, req models.DepositRequest) (*models.DepositResult, error) {
	var out models.DepositResult
	if err := c.do(ctx, http.MethodPost, "/wallet/deposit/", req, &out, "Deposit failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) WithdrawMain(ctx context.Context, req models.WithdrawRequest) (*models.WithdrawResult, error) {
	var out models.WithdrawResult
	if err := c.do(ctx, http.MethodPost, "/wallet/withdraw/main/", req, &out, "Withdrawal failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) WithdrawReferral(ctx context.Context, req models.WithdrawRequest) (*models.WithdrawResult, error) {
	var out models.WithdrawResult
	if err := c.do(ctx, http.MethodPost, "/wallet/withdraw/referral/", req, &out, "Withdrawal failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/wallet/transactions/", nil, &out, "Failed to load transactions"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) Packages(ctx context.Context) (*models.PackagesResponse, error) {
	var out models.PackagesResponse
	if err := c.do(ctx, http.MethodGet, "/packages/", nil, &out, "Failed to load packages"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) PurchasePackage(ctx context.Context, packageID int64) (*models.PurchasePackageResult, error) {
	req := models.PurchasePackageRequest{PackageID: packageID}
	var out models.PurchasePackageResult
	if err := c.do(ctx, http.MethodPost, "/packages/purchase/", req, &out, "Package purchase failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Purchases(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	if err := c.do(ctx, http.MethodGet, "/packages/purchases/", nil, &out, "Failed to load purchases"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) Adverts(ctx context.Context) (*models.AdvertsResponse, error) {
	var out models.AdvertsResponse
	if err := c.do(ctx, http.MethodGet, "/adverts/", nil, &out, "Failed to load adverts"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadAdvert fetches the advert media as raw bytes.
func (c *RESTClient) DownloadAdvert(ctx context.Context, advertID int64) ([]byte, error) {
	const fallback = "Failed to download advert"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/adverts/%d/download/", c.baseURL, advertID), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: normalizeErrorBody(data, fallback)}
	}
	return data, nil
}

// SubmitAdvert claims views for a shared advert. The backend requires the
// claim as a multipart form with the screenshot as proof, so this bypasses
// the JSON do() path.
func (c *RESTClient) SubmitAdvert(ctx context.Context, req models.SubmitAdvertRequest) (*models.Submission, error) {
	const fallback = "Failed to submit advert"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("advert_id", strconv.FormatInt(req.AdvertID, 10)); err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	if err := mw.WriteField("views_count", strconv.Itoa(req.ViewsCount)); err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	fw, err := mw.CreateFormFile("screenshot", req.ScreenshotName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	if _, err := fw.Write(req.Screenshot); err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/adverts/submit/", &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != "" {
		httpReq.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: normalizeErrorBody(data, fallback)}
	}

	var out models.Submission
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: invalid response: %w", fallback, err)
	}
	return &out, nil
}

func (c *RESTClient) Submissions(ctx context.Context) (*models.SubmissionsResponse, error) {
	var out models.SubmissionsResponse
	if err := c.do(ctx, http.MethodGet, "/submissions/", nil, &out, "Failed to load submissions"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/dashboard/products/", nil, &out, "Failed to load products"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) AllProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/dashboard/all-products/", nil, &out, "Failed to load products"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/dashboard/orders/", nil, &out, "Failed to load orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CancelOrder(ctx context.Context, orderID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/dashboard/orders/%d/cancel/", orderID), nil, nil, "Failed to cancel order")
}

func (c *RESTClient) TrackOrder(ctx context.Context, orderID int64) (*models.TrackingInfo, error) {
	var out models.TrackingInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/dashboard/orders/%d/track/", orderID), nil, &out, "Failed to track order"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ConfirmDelivery(ctx context.Context, orderID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/dashboard/orders/%d/confirm-delivery/", orderID), nil, nil, "Failed to confirm delivery")
}

func (c *RESTClient) RateOrder(ctx context.Context, orderID int64, rating int) error {
	req := models.RateOrderRequest{Rating: rating}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/dashboard/orders/%d/rate/", orderID), req, nil, "Failed to rate order")
}

func (c *RESTClient) LipaRegister(ctx context.Context, req models.LipaRegisterRequest) (*models.LipaRegistration, error) {
	var out models.LipaRegistration
	if err := c.do(ctx, http.MethodPost, "/dashboard/lipa/register/", req, &out, "Lipa registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// LipaRegistration returns the user's installment-program application, or
// (nil, nil) when none exists yet.
func (c *RESTClient) LipaRegistration(ctx context.Context) (*models.LipaRegistration, error) {
	var out models.LipaRegistration
	err := c.do(ctx, http.MethodGet, "/dashboard/lipa/registration/", nil, &out, "Failed to load Lipa registration")
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) InstallmentOrders(ctx context.Context) ([]models.InstallmentOrder, error) {
	var out []models.InstallmentOrder
	if err := c.do(ctx, http.MethodGet, "/dashboard/installment/orders/", nil, &out, "Failed to load installment orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) PayInstallment(ctx context.Context, req models.InstallmentPaymentRequest) (*models.InstallmentPaymentResult, error) {
	var out models.InstallmentPaymentResult
	if err := c.do(ctx, http.MethodPost, "/dashboard/installment/pay/", req, &out, "Installment payment failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) AgentPackages(ctx context.Context) ([]models.AgentPackage, error) {
	var out []models.AgentPackage
	if err := c.do(ctx, http.MethodGet, "/premium/packages/", nil, &out, "Failed to load agent packages"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) PurchaseAgentPackage(ctx context.Context, packageID int64) (*models.AgentPurchaseResult, error) {
	// The premium endpoint keys the id as "package", unlike the advert
	// package purchase which uses "package_id".
	req := struct {
		Package int64 `json:"package"`
	}{Package: packageID}
	var out models.AgentPurchaseResult
	if err := c.do(ctx, http.MethodPost, "/premium/purchase/", req, &out, "Agent package purchase failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) AgentPurchases(ctx context.Context) ([]models.AgentPurchase, error) {
	var out []models.AgentPurchase
	if err := c.do(ctx, http.MethodGet, "/premium/purchases/", nil, &out, "Failed to load agent purchases"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CashbackBonuses(ctx context.Context) ([]models.CashbackBonus, error) {
	var out []models.CashbackBonus
	if err := c.do(ctx, http.MethodGet, "/premium/cashback/", nil, &out, "Failed to load cashback bonuses"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) WeeklyBonuses(ctx context.Context) ([]models.WeeklyBonus, error) {
	var out []models.WeeklyBonus
	if err := c.do(ctx, http.MethodGet, "/premium/weekly-bonus/", nil, &out, "Failed to load weekly bonuses"); err != nil {
		return nil, err
	}
	return out, nil
}

type claimPayload struct {
	BonusID int64 `json:"bonus_id"`
}

func (c *RESTClient) ClaimCashback(ctx context.Context, bonusID int64) (*models.ClaimResult, error) {
	var out models.ClaimResult
	if err := c.do(ctx, http.MethodPost, "/premium/cashback/claim/", claimPayload{BonusID: bonusID}, &out, "Failed to claim cashback bonus"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ClaimWeeklyBonus(ctx context.Context, bonusID int64) (*models.ClaimResult, error) {
	var out models.ClaimResult
	if err := c.do(ctx, http.MethodPost, "/premium/weekly-bonus/claim/", claimPayload{BonusID: bonusID}, &out, "Failed to claim weekly bonus"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) SupportMessages(ctx context.Context) (*models.SupportMessagesPage, error) {
	var out models.SupportMessagesPage
	if err := c.do(ctx, http.MethodGet, "/support/messages/", nil, &out, "Failed to load support messages"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) PostSupportMessage(ctx context.Context, req models.PostSupportMessageRequest) (*models.SupportMessage, error) {
	var out models.SupportMessage
	if err := c.do(ctx, http.MethodPost, "/support/messages/", req, &out, "Failed to create support message"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) PresignUpload(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error) {
	var out models.PresignResponse
	if err := c.do(ctx, http.MethodPost, "/support/upload/", req, &out, "Failed to get presigned URL"); err != nil {
		return nil, err
	}
	return &out, nil
}
