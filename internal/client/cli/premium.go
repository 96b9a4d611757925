package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// Premium lists the agent verification packages and the user's purchases.
func (a *App) Premium(ctx context.Context) error {
	packages, err := a.premiumService.Packages(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(packages) == 0 {
		fmt.Println("No agent packages available")
	}
	for _, p := range packages {
		fmt.Printf("#%d  %-20s %10s  %s days\n", p.ID, p.Name, p.Price, p.ValidityDays)
	}

	purchases, err := a.premiumService.Purchases(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	for _, p := range purchases {
		fmt.Printf("Purchase #%d  %-20s [%s] expires %s (%d days left)\n",
			p.ID, p.Package.Name, p.Status, p.ExpiryDate, p.DaysRemaining)
	}
	return nil
}

// BuyPremium prompts for an agent package id and purchases it.
func (a *App) BuyPremium(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter agent package id to buy", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	result, err := a.premiumService.Purchase(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Println("Agent package purchased")
	}
	return nil
}

// Bonuses lists claimable cashback and weekly bonuses.
func (a *App) Bonuses(ctx context.Context) error {
	cashback, err := a.premiumService.CashbackBonuses(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	weekly, err := a.premiumService.WeeklyBonuses(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(cashback) == 0 && len(weekly) == 0 {
		fmt.Println("No bonuses yet")
		return nil
	}
	for _, b := range cashback {
		status := "claimable"
		if b.Claimed {
			status = "claimed"
		}
		fmt.Printf("cashback #%d  %10s  claim cost %s  [%s]\n", b.ID, b.Amount, b.ClaimCost, status)
	}
	for _, b := range weekly {
		status := "claimable"
		if b.Claimed {
			status = "claimed"
		}
		fmt.Printf("weekly   #%d  %10s  claim cost %s  week of %s  [%s]\n",
			b.ID, b.Amount, b.ClaimCost, b.WeekStart, status)
	}
	return nil
}

// Claim prompts for a bonus kind and id, then claims the bonus.
func (a *App) Claim(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Claim which bonus? (cashback/weekly)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	id, err := GetID(a.reader, "Enter bonus id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	var result *models.ClaimResult
	if kind == "weekly" {
		result, err = a.premiumService.ClaimWeekly(ctx, id)
	} else {
		result, err = a.premiumService.ClaimCashback(ctx, id)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Println("Bonus claimed")
	}
	return nil
}
