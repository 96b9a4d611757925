package models

// ReferralStats summarizes the user's downline and commission earnings.
type ReferralStats struct {
	TotalReferrals      int    `json:"total_referrals"`
	ActiveReferrals     int    `json:"active_referrals"`
	TotalCommission     string `json:"total_commission"`
	ThisMonthCommission string `json:"this_month_commission"`
}
