package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if user, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

// Root runs the interactive command loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to GrandV CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		if user, ok := a.session.User(); ok {
			fmt.Printf("Signed in as %s\n", user.Username)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
