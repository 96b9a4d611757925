package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// Lipa shows the user's installment-program status, offers registration when
// there is none, and lists active installment orders.
func (a *App) Lipa(ctx context.Context) error {
	registration, err := a.lipaService.Registration(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if registration == nil {
		answer, err := getSimpleText(a.reader, "You are not registered for Lipa Mdogo Mdogo. Register now? (y/n)", os.Stdout)
		if err != nil {
			return err
		}
		if answer != "y" && answer != "yes" {
			return nil
		}
		return a.lipaRegister(ctx)
	}

	fmt.Printf("Registration: %s (applied %s)\n", registration.Status, registration.CreatedAt)
	if registration.Status != "approved" {
		return nil
	}

	orders, err := a.lipaService.InstallmentOrders(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No installment orders")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("#%d  %-30s paid %s of %s, %s remaining  [%s]\n",
			o.ID, o.ProductName, o.AmountPaid, o.TotalAmount, o.RemainingBalance, o.Status)
	}
	return nil
}

func (a *App) lipaRegister(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	idNumber, err := getSimpleText(a.reader, "Enter national ID number", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number (e.g., +254712345678)", os.Stdout)
	if err != nil {
		return err
	}
	occupation, err := getSimpleText(a.reader, "Enter occupation (optional)", os.Stdout)
	if err != nil {
		return err
	}

	registration, err := a.lipaService.Register(ctx, models.LipaRegisterRequest{
		FullName:    fullName,
		IDNumber:    idNumber,
		PhoneNumber: phone,
		Occupation:  occupation,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Application submitted, status: %s\n", registration.Status)
	return nil
}

// PayInstallment prompts for an order and amount and pays down the balance
// from the main wallet.
func (a *App) PayInstallment(ctx context.Context) error {
	orderID, err := GetID(a.reader, "Enter installment order id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	amount, err := GetAmount(a.reader, "Enter amount to pay", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	result, err := a.lipaService.Pay(ctx, orderID, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	}
	if result.RemainingBalance != "" {
		fmt.Printf("Remaining balance: %s\n", result.RemainingBalance)
	}
	return nil
}
