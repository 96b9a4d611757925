package cli

import (
	"context"
	"fmt"
	"os"
)

// Packages lists the advertising packages and the user's current one.
func (a *App) Packages(ctx context.Context) error {
	resp, err := a.packageService.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if resp.UserPackage != nil {
		fmt.Printf("Current package: %s (%d days remaining)\n",
			resp.UserPackage.Package.Name, resp.UserPackage.DaysRemaining)
	}
	for _, p := range resp.Packages {
		fmt.Printf("#%d  %-20s %10s  %.2f per view, %d days\n",
			p.ID, p.Name, p.Price, p.RatePerView, p.ValidityDays)
	}
	return nil
}

// Buy prompts for a package id and purchases it from the main balance.
func (a *App) Buy(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter package id to buy", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	result, err := a.packageService.Purchase(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Println("Package purchased")
	}
	return nil
}

// Purchases prints the user's package purchase history.
func (a *App) Purchases(ctx context.Context) error {
	purchases, err := a.packageService.Purchases(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(purchases) == 0 {
		fmt.Println("No purchases yet")
		return nil
	}
	for _, p := range purchases {
		fmt.Printf("#%d  %-20s bought %s, expires %s (%d days left)\n",
			p.ID, p.Package.Name, p.PurchaseDate, p.ExpiryDate, p.DaysRemaining)
	}
	return nil
}
