package cli

import (
	"context"
	"fmt"
)

// Referrals prints the user's referral code, invite link, and commission
// stats.
func (a *App) Referrals(ctx context.Context) error {
	stats, err := a.referralService.Stats(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if user, ok := a.session.User(); ok {
		fmt.Printf("Your referral code: %s\n", user.ReferralCode)
	}
	fmt.Printf("Total referrals:       %d\n", stats.TotalReferrals)
	fmt.Printf("Active referrals:      %d\n", stats.ActiveReferrals)
	fmt.Printf("Total commission:      %s\n", stats.TotalCommission)
	fmt.Printf("This month commission: %s\n", stats.ThisMonthCommission)
	return nil
}
