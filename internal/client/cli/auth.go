package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and attempts to create an
// account via the session. A referral code left empty here may still be
// filled in from a captured invite link.
//
// Validation and backend errors are rendered inline under the form, the way
// field errors appear under the matching inputs. The password byte slice is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone number (e.g., +1234567890)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	code, err := getSimpleText(a.reader, "Enter referral code (optional)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{
		Username:     username,
		Email:        email,
		PhoneNumber:  phone,
		Password:     string(password),
		ReferralCode: code,
	}

	if err := a.session.Register(ctx, req); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	return nil
}

// Login prompts for credentials and signs the user in through the session.
// Failures are rendered inline; the session stays unauthenticated.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	return nil
}

// Logout ends the session immediately and clears stored credentials.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
