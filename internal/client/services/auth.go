// Package services contains application services for the GrandV client.
// This file defines the authentication service: login, registration with
// local validation and referral resolution, and synchronous credential reads.
package services

import (
	"context"
	"regexp"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/client/referral"
	"github.com/its-steo/GrandV-sub001/internal/client/repositories/credentials"
)

// phoneRe accepts international phone format: leading +, 10-15 digits.
var phoneRe = regexp.MustCompile(`^\+\d{10,15}$`)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and persist the credential
//     record on success.
//   - Register: validate locally, resolve the referral code, create the
//     account, persist credentials, clear the captured code.
//   - UpdateProfile: patch the profile on the backend and refresh the
//     persisted user snapshot.
//   - ChangePassword: verify the confirmation locally, then change the
//     password on the backend.
//   - Logout: clear the credential record; no network call.
//   - Token/User: synchronous reads from the local store; absent when the
//     store is empty, unreadable, or corrupt.
//   - IsAuthenticated: true iff a token is present locally.
//
// The credential store is mutated only through this service.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, bool)
	User(ctx context.Context) (*models.User, bool)
	IsAuthenticated(ctx context.Context) bool
}

type authService struct {
	client   api.Client
	store    *credentials.Store
	referral *referral.Capture
}

// NewAuthService constructs an AuthService bound to the given API client,
// credential store, and referral capture. Any token persisted from a prior
// run is attached to the transport immediately so protected calls work
// without a fresh sign-in.
func NewAuthService(client api.Client, store *credentials.Store, capture *referral.Capture) AuthService {
	a := &authService{client: client, store: store, referral: capture}
	if token, _, ok := store.Read(context.Background()); ok {
		client.SetToken(token)
	}
	return a
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	resp, err := a.client.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	// A failed persist downgrades to a memory-only session rather than
	// failing the sign-in.
	_ = a.store.Save(ctx, resp.Token, resp.User)
	a.client.SetToken(resp.Token)

	return resp, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if !phoneRe.MatchString(req.PhoneNumber) {
		return nil, &ValidationError{
			Field:   "phone_number",
			Message: "Phone number must be in international format (e.g., +1234567890)",
		}
	}

	if req.ReferralCode == "" {
		if code, ok := a.referral.Code(); ok {
			req.ReferralCode = code
		}
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	_ = a.store.Save(ctx, resp.Token, resp.User)
	a.client.SetToken(resp.Token)
	a.referral.Clear()

	return resp, nil
}

func (a *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	// Keep the stored snapshot in step with the backend. The token is
	// unchanged by a profile patch.
	if token, _, ok := a.store.Read(ctx); ok {
		_ = a.store.Save(ctx, token, *user)
	}
	return user, nil
}

func (a *authService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return &ValidationError{Field: "password", Message: "Password must not be empty"}
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return &ValidationError{Field: "new_password_confirm", Message: "New passwords do not match"}
	}
	return a.client.ChangePassword(ctx, req)
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return a.store.Clear(ctx)
}

func (a *authService) Token(ctx context.Context) (string, bool) {
	token, _, ok := a.store.Read(ctx)
	if !ok {
		return "", false
	}
	return token, true
}

func (a *authService) User(ctx context.Context) (*models.User, bool) {
	_, user, ok := a.store.Read(ctx)
	if !ok {
		return nil, false
	}
	return user, true
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.Token(ctx)
	return ok
}
