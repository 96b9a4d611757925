package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/common"
)

// Profile prints the signed-in user's profile snapshot. If the session has
// no user, access is refused rather than crashing on missing data.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		fmt.Println("Access denied: no signed-in user")
		return nil
	}

	fmt.Printf("Username:      %s\n", user.Username)
	fmt.Printf("Email:         %s\n", user.Email)
	fmt.Printf("Phone:         %s\n", user.PhoneNumber)
	fmt.Printf("Referral code: %s\n", user.ReferralCode)
	if user.IsMarketer {
		fmt.Println("Role:          marketer")
	}
	if user.IsVerifiedAgent {
		fmt.Println("Role:          verified agent")
	}
	if !user.IsEmailVerified {
		fmt.Println("Note: email not verified")
	}
	return nil
}

// Update edits the profile. Fields left empty keep their current value.
func (a *App) Update(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter new username (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter new email (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter new phone number (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.UpdateProfile(ctx, models.UpdateProfileRequest{
		Username:    username,
		Email:       email,
		PhoneNumber: phone,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Printf("Profile updated: %s <%s> %s\n", user.Username, user.Email, user.PhoneNumber)
	return nil
}

// Passwd rotates the account password. The new password is prompted twice
// and must match before anything is sent.
func (a *App) Passwd(ctx context.Context) error {
	fmt.Println("Current password")
	current, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	fmt.Println("New password")
	next, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	fmt.Println("Confirm new password")
	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.session.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword:    string(current),
		NewPassword:        string(next),
		NewPasswordConfirm: string(confirm),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Println("Password changed")
	return nil
}
