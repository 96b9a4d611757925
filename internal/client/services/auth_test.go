package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/client/referral"
	"github.com/its-steo/GrandV-sub001/internal/client/repositories/credentials"
)

func newTestStore(t *testing.T) *credentials.Store {
	t.Helper()
	db, err := credentials.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return credentials.NewStore(db)
}

func TestAuthService_Login_PersistsCredentials(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		loginFn: func(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
			return &models.AuthResponse{
				Token: "tok-1",
				User:  models.User{ID: 7, Username: req.Username, ReferralCode: "ABC123"},
			}, nil
		},
	}
	store := newTestStore(t)
	svc := NewAuthService(client, store, referral.NewCapture(nil))

	resp, err := svc.Login(ctx, "steo", "secret")
	require.NoError(t, err)
	assert.Equal(t, "steo", resp.User.Username)

	assert.Equal(t, "tok-1", client.token)
	assert.True(t, svc.IsAuthenticated(ctx))

	token, ok := svc.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	user, ok := svc.User(ctx)
	require.True(t, ok)
	assert.Equal(t, "steo", user.Username)
}

func TestAuthService_Login_BackendError(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		loginFn: func(context.Context, models.LoginRequest) (*models.AuthResponse, error) {
			return nil, &api.APIError{StatusCode: 401, Message: "Invalid credentials"}
		},
	}
	svc := NewAuthService(client, newTestStore(t), referral.NewCapture(nil))

	_, err := svc.Login(ctx, "steo", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials")
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestAuthService_Register_RejectsMalformedPhoneLocally(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewAuthService(client, newTestStore(t), referral.NewCapture(nil))

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username:    "steo",
		Email:       "steo@example.com",
		PhoneNumber: "0712345678",
		Password:    "secret123",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone_number", vErr.Field)
	assert.Equal(t, 0, client.registerCalls, "invalid input must not reach the backend")
}

func TestAuthService_Register_ResolvesCapturedReferralCode(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	link := "https://grandv.app/register?ref=FRIEND1"
	capture := referral.NewCapture(func() string { return link })
	svc := NewAuthService(client, newTestStore(t), capture)

	// Prime the cache, then drop the link, as when the user navigates on
	// after arriving through the invite.
	_, ok := capture.Code()
	require.True(t, ok)
	link = ""

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username:    "steo",
		Email:       "steo@example.com",
		PhoneNumber: "+254712345678",
		Password:    "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "FRIEND1", client.lastRegister.ReferralCode)

	// A successful registration consumes the captured code.
	_, ok = capture.Code()
	assert.False(t, ok)
}

func TestAuthService_Register_ExplicitCodeWinsOverCaptured(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	capture := referral.NewCapture(func() string {
		return "https://grandv.app/register?ref=FRIEND1"
	})
	svc := NewAuthService(client, newTestStore(t), capture)

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username:     "steo",
		Email:        "steo@example.com",
		PhoneNumber:  "+254712345678",
		Password:     "secret123",
		ReferralCode: "TYPED99",
	})
	require.NoError(t, err)
	assert.Equal(t, "TYPED99", client.lastRegister.ReferralCode)
}

func TestAuthService_Logout_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewAuthService(client, newTestStore(t), referral.NewCapture(nil))

	_, err := svc.Login(ctx, "steo", "secret")
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated(ctx))

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, client.token)
	assert.False(t, svc.IsAuthenticated(ctx))
	_, ok := svc.User(ctx)
	assert.False(t, ok)
}

func TestAuthService_UpdateProfile_RefreshesStoredSnapshot(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		updateFn: func(_ context.Context, req models.UpdateProfileRequest) (*models.User, error) {
			return &models.User{ID: 7, Username: "steo", Email: req.Email}, nil
		},
	}
	store := newTestStore(t)
	svc := NewAuthService(client, store, referral.NewCapture(nil))

	_, err := svc.Login(ctx, "steo", "secret")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, models.UpdateProfileRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	user, ok := svc.User(ctx)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", user.Email)

	token, ok := svc.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", token, "a profile patch must not disturb the token")
}

func TestAuthService_ChangePassword_RejectsMismatchLocally(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewAuthService(client, newTestStore(t), referral.NewCapture(nil))

	err := svc.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword:    "old-secret",
		NewPassword:        "new-secret",
		NewPasswordConfirm: "new-secert",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "new_password_confirm", vErr.Field)
	assert.Zero(t, client.passwdCalls, "mismatched confirmation must not reach the backend")
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewAuthService(client, newTestStore(t), referral.NewCapture(nil))

	require.NoError(t, svc.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword:    "old-secret",
		NewPassword:        "new-secret",
		NewPasswordConfirm: "new-secret",
	}))
	assert.Equal(t, 1, client.passwdCalls)
}

func TestNewAuthService_PrimesTokenFromStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Save(ctx, "tok-prev", models.User{Username: "steo"}))

	client := &fakeClient{}
	svc := NewAuthService(client, store, referral.NewCapture(nil))

	assert.Equal(t, "tok-prev", client.token)
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestPhoneValidation(t *testing.T) {
	valid := []string{"+1234567890", "+254712345678", "+123456789012345"}
	invalid := []string{"0712345678", "+123", "1234567890", "+12345678901234567", "+2547a2345678", ""}

	for _, p := range valid {
		assert.True(t, phoneRe.MatchString(p), p)
	}
	for _, p := range invalid {
		assert.False(t, phoneRe.MatchString(p), p)
	}
}
