// Package models holds the typed JSON shapes exchanged with the GrandV
// backend and cached locally.
package models

// User is the backend's profile snapshot. The client never mutates it field
// by field; it is replaced wholesale on login, registration and profile
// update.
type User struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	ReferralCode    string `json:"referral_code"`
	IsMarketer      bool   `json:"is_marketer"`
	IsVerifiedAgent bool   `json:"is_verified_agent,omitempty"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

// AuthResponse is the success body of login and registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial profile edit; empty fields are omitted
// and left unchanged server-side.
type UpdateProfileRequest struct {
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ChangePasswordRequest rotates the account password. The confirmation must
// match NewPassword.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// RegisterRequest carries the registration form. ReferralCode is optional;
// when empty the captured invite code (if any) is sent instead.
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PhoneNumber  string `json:"phone_number"`
	ReferralCode string `json:"referral_code,omitempty"`
}
