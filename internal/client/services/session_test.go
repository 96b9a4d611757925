package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/notification"
)

// fakeAuth implements AuthService in memory, with an optional gate that
// holds Login open until released.
type fakeAuth struct {
	mu           sync.Mutex
	token        string
	user         *models.User
	loginErr     error
	loginGate    chan struct{}
	registerGate chan struct{}
	logoutCalls  int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if f.loginGate != nil {
		<-f.loginGate
	}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	resp := &models.AuthResponse{Token: "tok", User: models.User{Username: username, ReferralCode: "CODE1"}}
	f.mu.Lock()
	f.token = resp.Token
	f.user = &resp.User
	f.mu.Unlock()
	return resp, nil
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if f.registerGate != nil {
		<-f.registerGate
	}
	resp := &models.AuthResponse{Token: "tok", User: models.User{Username: req.Username, ReferralCode: "CODE1"}}
	f.mu.Lock()
	f.token = resp.Token
	f.user = &resp.User
	f.mu.Unlock()
	return resp, nil
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user != nil && req.Username != "" {
		f.user.Username = req.Username
	}
	return f.user, nil
}

func (f *fakeAuth) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.token = ""
	f.user = nil
	return nil
}

func (f *fakeAuth) Token(ctx context.Context) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.token != ""
}

func (f *fakeAuth) User(ctx context.Context) (*models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return nil, false
	}
	return f.user, true
}

func (f *fakeAuth) IsAuthenticated(ctx context.Context) bool {
	_, ok := f.Token(ctx)
	return ok
}

// recordingNotifier collects every message it is handed.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (r *recordingNotifier) Notify(_ context.Context, m notification.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

func (r *recordingNotifier) all() []notification.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification.Message(nil), r.messages...)
}

func TestNewSession_RehydratesFromLocalStorage(t *testing.T) {
	auth := &fakeAuth{token: "tok-prev", user: &models.User{Username: "steo"}}

	s := NewSession(auth, nil)

	assert.Equal(t, StateAuthenticated, s.State())
	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "steo", user.Username)
}

func TestNewSession_NoStoredCredentials(t *testing.T) {
	s := NewSession(&fakeAuth{}, nil)

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAuthenticated())
}

func TestNewSession_NilAuthPanics(t *testing.T) {
	assert.Panics(t, func() { NewSession(nil, nil) })
}

func TestSession_Login_Success(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := NewSession(&fakeAuth{}, notifier)

	require.NoError(t, s.Login(ctx, "steo", "secret"))

	assert.Equal(t, StateAuthenticated, s.State())
	assert.False(t, s.IsLoading())

	msgs := notifier.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.KindLogin, msgs[0].Kind)
	assert.Equal(t, "Welcome back, steo!", msgs[0].Body)
}

func TestSession_Login_FailureReturnsErrorForInlineRendering(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	auth := &fakeAuth{loginErr: &api.APIError{StatusCode: 401, Message: "Invalid credentials"}}
	s := NewSession(auth, notifier)

	err := s.Login(ctx, "steo", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials")

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsLoading())
	assert.Empty(t, notifier.all(), "failures render inline, not as notifications")
}

func TestSession_Register_Success(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := NewSession(&fakeAuth{}, notifier)

	require.NoError(t, s.Register(ctx, models.RegisterRequest{
		Username:    "steo",
		Email:       "steo@example.com",
		PhoneNumber: "+254712345678",
		Password:    "secret123",
	}))

	assert.Equal(t, StateAuthenticated, s.State())
	msgs := notifier.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.KindRegister, msgs[0].Kind)
	assert.Equal(t, "Welcome steo! Your referral code: CODE1", msgs[0].Body)
}

func TestSession_Logout(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := NewSession(&fakeAuth{token: "tok", user: &models.User{Username: "steo"}}, notifier)
	require.Equal(t, StateAuthenticated, s.State())

	require.NoError(t, s.Logout(ctx))

	assert.Equal(t, StateUnauthenticated, s.State())
	_, ok := s.User()
	assert.False(t, ok)

	msgs := notifier.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.KindLogout, msgs[0].Kind)
	assert.Equal(t, "You have been successfully logged out", msgs[0].Body)
}

func TestSession_LogoutWinsOverInflightLogin(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{loginGate: make(chan struct{})}
	s := NewSession(auth, nil)

	done := make(chan error, 1)
	go func() { done <- s.Login(ctx, "steo", "secret") }()

	// Wait for the login to enter its loading sub-state before logging out.
	require.Eventually(t, s.IsLoading, time.Second, time.Millisecond)
	require.NoError(t, s.Logout(ctx))

	close(auth.loginGate)
	require.ErrorIs(t, <-done, ErrSignInInterrupted,
		"a discarded login must not read as success")

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAuthenticated())
	_, ok := auth.Token(ctx)
	assert.False(t, ok, "credentials persisted by the stale login must be cleared")
	assert.GreaterOrEqual(t, auth.logoutCalls, 2)
}

func TestSession_LogoutWinsOverInflightRegister(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{registerGate: make(chan struct{})}
	s := NewSession(auth, nil)

	done := make(chan error, 1)
	go func() {
		done <- s.Register(ctx, models.RegisterRequest{Username: "steo", Password: "secret123"})
	}()

	require.Eventually(t, s.IsLoading, time.Second, time.Millisecond)
	require.NoError(t, s.Logout(ctx))

	close(auth.registerGate)
	require.ErrorIs(t, <-done, ErrSignInInterrupted)

	assert.Equal(t, StateUnauthenticated, s.State())
	_, ok := auth.Token(ctx)
	assert.False(t, ok)
}

func TestSession_LoadingDuringLogin(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{loginGate: make(chan struct{})}
	s := NewSession(auth, nil)

	done := make(chan error, 1)
	go func() { done <- s.Login(ctx, "steo", "secret") }()

	require.Eventually(t, s.IsLoading, time.Second, time.Millisecond)

	close(auth.loginGate)
	require.NoError(t, <-done)
	assert.False(t, s.IsLoading())
}

func TestSession_UpdateProfile_RefreshesUser(t *testing.T) {
	ctx := context.Background()
	s := NewSession(&fakeAuth{token: "tok", user: &models.User{Username: "steo"}}, nil)
	require.Equal(t, StateAuthenticated, s.State())

	_, err := s.UpdateProfile(ctx, models.UpdateProfileRequest{Username: "steo2"})
	require.NoError(t, err)

	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "steo2", user.Username)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "unknown", State(99).String())
}
