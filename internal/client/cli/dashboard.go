package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// Dashboard prints the landing-page summary.
func (a *App) Dashboard(ctx context.Context) error {
	stats, err := a.dashboardService.Stats(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	activePackage := "none"
	if stats.ActivePackage != nil {
		activePackage = *stats.ActivePackage
	}

	fmt.Printf("Total earnings:   %s\n", stats.TotalEarnings)
	fmt.Printf("Active package:   %s\n", activePackage)
	fmt.Printf("Ads viewed today: %d\n", stats.AdsViewedToday)
	fmt.Printf("Referrals:        %d\n", stats.ReferralsCount)
	return nil
}

// Products prompts for the catalogue scope and lists store products.
func (a *App) Products(ctx context.Context) error {
	scope, err := getSimpleText(a.reader, "Which products? (featured/all)", os.Stdout)
	if err != nil {
		return err
	}

	switch scope {
	case "all":
		list, err := a.dashboardService.AllProducts(ctx)
		if err != nil {
			fmt.Println("Error:", err)
			return err
		}
		printProducts(list)
	default:
		list, err := a.dashboardService.FeaturedProducts(ctx)
		if err != nil {
			fmt.Println("Error:", err)
			return err
		}
		printProducts(list)
	}
	return nil
}

func printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("No products found")
		return
	}
	for _, p := range products {
		installments := ""
		if p.SupportsInstallments {
			installments = "  (installments available)"
		}
		fmt.Printf("#%d  %-30s %10s%s\n", p.ID, p.Name, p.Price, installments)
	}
}

// Orders prints the user's store order history.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.dashboardService.Orders(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("#%d  %-10s %10s  %s\n", o.ID, o.Status, o.TotalAmount, o.CreatedAt)
	}
	return nil
}

// Cancel cancels a pending order.
func (a *App) Cancel(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter order id to cancel", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if err := a.dashboardService.CancelOrder(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Printf("Order #%d cancelled\n", id)
	return nil
}

// Track prints the live tracking details for an order.
func (a *App) Track(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter order id to track", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	info, err := a.dashboardService.TrackOrder(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if info.TrackingNumber != "" {
		fmt.Printf("Tracking number: %s\n", info.TrackingNumber)
	}
	if info.Status != "" {
		fmt.Printf("Status:          %s\n", info.Status)
	}
	if info.EstimatedDelivery != "" {
		fmt.Printf("Estimated:       %s\n", info.EstimatedDelivery)
	}
	if info.DeliveryGuy != nil {
		fmt.Printf("Courier:         %s (%s)\n", info.DeliveryGuy.Name, info.DeliveryGuy.VehicleType)
	}
	for _, ev := range info.History {
		fmt.Printf("  %s  %s\n", ev.Timestamp, ev.Description)
	}
	return nil
}

// Confirm marks a shipped order as delivered.
func (a *App) Confirm(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter order id to confirm delivery", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if err := a.dashboardService.ConfirmDelivery(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Printf("Delivery confirmed for order #%d\n", id)
	return nil
}

// Rate rates a delivered order from 1 to 5 stars.
func (a *App) Rate(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter order id to rate", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	rating, err := GetID(a.reader, "Enter rating (1-5)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if err := a.dashboardService.RateOrder(ctx, id, int(rating)); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Printf("Rated order #%d: %d stars\n", id, rating)
	return nil
}
