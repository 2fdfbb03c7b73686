package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/spacedata/internal/ui"
)

// Run drives the top-level menu loop until the user exits or input ends.
//
// Top menu:
//
//	1. Login
//	2. Sign Up
//	3. Forgot Password
//	4. Exit
//
// A successful login switches to the logged-in menu until the user logs out.
// Command handlers report their own errors; the loop itself only dispatches.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, ui.TitleStyle.Render("Welcome to the NASA Space Data App!"))

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1. Login")
		fmt.Fprintln(a.out, "2. Sign Up")
		fmt.Fprintln(a.out, "3. Forgot Password")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := getSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			if a.Login(ctx) {
				a.loggedInMenu(ctx)
			}
		case "2":
			a.SignUp(ctx)
		case "3":
			a.ForgotPassword(ctx)
		case "4":
			fmt.Fprintln(a.out, "Exiting application.")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option. Please try again.")
		}
	}
}

// loggedInMenu serves the post-login commands until log-out or EOF.
//
//	1. Fetch NEO Data
//	2. Fetch SSD Data
//	3. Log out
func (a *App) loggedInMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, ui.TitleStyle.Render("Logged In - Select an option:"))
		fmt.Fprintln(a.out, "1. Fetch NEO Data")
		fmt.Fprintln(a.out, "2. Fetch SSD Data")
		fmt.Fprintln(a.out, "3. Log out")

		choice, err := getSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.FetchNEO(ctx)
		case "2":
			a.FetchSSD(ctx)
		case "3":
			fmt.Fprintln(a.out, "Logging out.")
			a.userEmail = ""
			return
		default:
			fmt.Fprintln(a.out, "Invalid option. Please try again.")
		}
	}
}
