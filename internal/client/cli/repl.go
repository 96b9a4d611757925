package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Wallet(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Transactions(ctx context.Context) error
	Packages(ctx context.Context) error
	Buy(ctx context.Context) error
	Purchases(ctx context.Context) error
	Adverts(ctx context.Context) error
	Download(ctx context.Context) error
	Submit(ctx context.Context) error
	Submissions(ctx context.Context) error
	Referrals(ctx context.Context) error
	Products(ctx context.Context) error
	Orders(ctx context.Context) error
	Cancel(ctx context.Context) error
	Track(ctx context.Context) error
	Confirm(ctx context.Context) error
	Rate(ctx context.Context) error
	Premium(ctx context.Context) error
	BuyPremium(ctx context.Context) error
	Bonuses(ctx context.Context) error
	Claim(ctx context.Context) error
	Update(ctx context.Context) error
	Passwd(ctx context.Context) error
	Lipa(ctx context.Context) error
	PayInstallment(ctx context.Context) error
	Support(ctx context.Context) error
	Post(ctx context.Context) error
	Upload(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: dashboard, profile, update, passwd, wallet, deposit, withdraw, " +
		"transactions, packages, buy, purchases, adverts, download, submit, submissions, referrals, " +
		"products, orders, cancel, track, confirm, rate, premium, buypremium, bonuses, claim, " +
		"lipa, payinstallment, support, post, upload, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the GrandV CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that require a signed-in user are refused while logged out; the
// user is pointed at login instead of the request reaching the backend.
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors inline. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("grandv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first (type 'login' or 'register')")
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "wallet":
			_ = a.Wallet(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "transactions":
			_ = a.Transactions(ctx)

		case "packages":
			_ = a.Packages(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "purchases":
			_ = a.Purchases(ctx)

		case "adverts":
			_ = a.Adverts(ctx)

		case "download":
			_ = a.Download(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "submissions":
			_ = a.Submissions(ctx)

		case "referrals":
			_ = a.Referrals(ctx)

		case "products":
			_ = a.Products(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "track":
			_ = a.Track(ctx)

		case "confirm":
			_ = a.Confirm(ctx)

		case "rate":
			_ = a.Rate(ctx)

		case "premium":
			_ = a.Premium(ctx)

		case "buypremium":
			_ = a.BuyPremium(ctx)

		case "bonuses":
			_ = a.Bonuses(ctx)

		case "claim":
			_ = a.Claim(ctx)

		case "update":
			_ = a.Update(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "lipa":
			_ = a.Lipa(ctx)

		case "payinstallment":
			_ = a.PayInstallment(ctx)

		case "support":
			_ = a.Support(ctx)

		case "post":
			_ = a.Post(ctx)

		case "upload":
			_ = a.Upload(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
