package cli

import (
	"context"
	"fmt"
	"os"
)

// Wallet prints the main and referral balances.
func (a *App) Wallet(ctx context.Context) error {
	balance, err := a.walletService.Balance(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Main balance:     %s\n", balance.MainBalance)
	fmt.Printf("Referral balance: %s\n", balance.ReferralBalance)
	fmt.Printf("Total balance:    %s\n", balance.TotalBalance)
	return nil
}

// Deposit prompts for an amount and phone number and initiates an M-Pesa
// deposit.
func (a *App) Deposit(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Enter amount to deposit", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter M-Pesa phone number (e.g., +254712345678)", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.walletService.Deposit(ctx, amount, phone)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Println("Deposit initiated, check your phone to confirm")
	}
	return nil
}

// Withdraw prompts for the source wallet, amount, and M-Pesa number and
// requests a withdrawal.
func (a *App) Withdraw(ctx context.Context) error {
	source, err := getSimpleText(a.reader, "Withdraw from which wallet? (main/referral)", os.Stdout)
	if err != nil {
		return err
	}
	if source != "main" && source != "referral" {
		fmt.Println("Error: wallet must be 'main' or 'referral'")
		return nil
	}

	amount, err := GetAmount(a.reader, "Enter amount to withdraw", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter M-Pesa phone number (e.g., +254712345678)", os.Stdout)
	if err != nil {
		return err
	}

	var message string
	if source == "main" {
		result, err := a.walletService.WithdrawMain(ctx, amount, phone)
		if err != nil {
			fmt.Println("Error:", err)
			return err
		}
		message = result.Message
	} else {
		result, err := a.walletService.WithdrawReferral(ctx, amount, phone)
		if err != nil {
			fmt.Println("Error:", err)
			return err
		}
		message = result.Message
	}

	if message != "" {
		fmt.Println(message)
	} else {
		fmt.Println("Withdrawal requested")
	}
	return nil
}

// Transactions prints the wallet ledger, newest first as the backend
// returns it.
func (a *App) Transactions(ctx context.Context) error {
	transactions, err := a.walletService.Transactions(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions yet")
		return nil
	}
	for _, tx := range transactions {
		fmt.Printf("%s  %-12s %10s  %s\n", tx.CreatedAt, tx.TransactionType, tx.Amount, tx.Description)
	}
	return nil
}
