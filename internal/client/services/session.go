package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/notification"
)

// State is the session's observable lifecycle state.
type State int

const (
	// StateLoading is the initial state, before rehydration completes.
	StateLoading State = iota
	// StateUnauthenticated means no user is signed in.
	StateUnauthenticated
	// StateAuthenticated means a user is signed in.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the single authoritative in-memory session for a running
// client. It is constructed once, rehydrated synchronously from the local
// credential store (no network round trip), and injected into everything
// that needs the current user.
//
// Login and Register hold a loading sub-state for their whole duration and
// return the normalized error for the caller to render inline. Logout is
// immediate and always wins over an in-flight login or registration: a
// request that resolves after a logout is discarded and its persisted
// credentials are cleared again.
type Session struct {
	auth     AuthService
	notifier notification.Notifier

	mu      sync.Mutex
	state   State
	user    *models.User
	loading bool
	gen     uint64
}

// NewSession constructs the session and rehydrates it from local storage.
// A nil auth service is a programming error and panics immediately.
func NewSession(auth AuthService, notifier notification.Notifier) *Session {
	if auth == nil {
		panic("services: Session requires an AuthService")
	}

	s := &Session{auth: auth, notifier: notifier, state: StateLoading}

	if user, ok := auth.User(context.Background()); ok {
		s.user = user
		s.state = StateAuthenticated
	} else {
		s.state = StateUnauthenticated
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the signed-in user, if any.
func (s *Session) User() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// IsLoading reports whether a sign-in or registration is in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Login signs the user in. On failure the session returns to
// Unauthenticated and the error is returned for inline rendering.
func (s *Session) Login(ctx context.Context, username, password string) error {
	gen := s.beginAuthCall()

	resp, err := s.auth.Login(ctx, username, password)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		if s.state != StateAuthenticated {
			s.state = StateUnauthenticated
		}
		s.mu.Unlock()
		return err
	}
	if s.gen != gen {
		s.mu.Unlock()
		// Logged out while the request was in flight: the logout wins, so
		// drop the credentials the auth call just persisted and report the
		// sign-in as discarded rather than succeeded.
		if lerr := s.auth.Logout(ctx); lerr != nil {
			return errors.Join(ErrSignInInterrupted, lerr)
		}
		return ErrSignInInterrupted
	}
	s.user = &resp.User
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.notify(ctx, notification.KindLogin, fmt.Sprintf("Welcome back, %s!", resp.User.Username))
	return nil
}

// Register creates an account and signs the user in. Symmetric to Login.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) error {
	gen := s.beginAuthCall()

	resp, err := s.auth.Register(ctx, req)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		if s.state != StateAuthenticated {
			s.state = StateUnauthenticated
		}
		s.mu.Unlock()
		return err
	}
	if s.gen != gen {
		s.mu.Unlock()
		if lerr := s.auth.Logout(ctx); lerr != nil {
			return errors.Join(ErrSignInInterrupted, lerr)
		}
		return ErrSignInInterrupted
	}
	s.user = &resp.User
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.notify(ctx, notification.KindRegister,
		fmt.Sprintf("Welcome %s! Your referral code: %s", resp.User.Username, resp.User.ReferralCode))
	return nil
}

// UpdateProfile patches the signed-in user's profile and refreshes the
// in-memory snapshot on success.
func (s *Session) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.auth.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.user = user
	}
	s.mu.Unlock()
	return user, nil
}

// ChangePassword rotates the account password. The session itself is
// untouched; the token stays valid.
func (s *Session) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return s.auth.ChangePassword(ctx, req)
}

// Logout ends the session immediately; no loading state, no network call.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	s.user = nil
	s.loading = false
	s.state = StateUnauthenticated
	s.mu.Unlock()

	err := s.auth.Logout(ctx)
	s.notify(ctx, notification.KindLogout, "You have been successfully logged out")
	return err
}

func (s *Session) beginAuthCall() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	return s.gen
}

func (s *Session) notify(ctx context.Context, kind, body string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, notification.Message{Kind: kind, Body: body})
}
