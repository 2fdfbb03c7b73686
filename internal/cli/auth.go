package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spacedata/internal/common"
	"github.com/dmitrijs2005/spacedata/internal/ui"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login runs the interactive login flow. Each failed attempt (unknown email
// or wrong password) consumes one attempt from the session budget; the
// password is only prompted for once the email is known. The flow ends on
// success, on lockout, or when input ends. Returns whether the user is now
// logged in.
func (a *App) Login(ctx context.Context) bool {
	session := a.authService.NewLoginSession()

	for !session.LockedOut() {
		email, err := getSimpleText(a.reader, "Enter your email", a.out)
		if err != nil {
			return false
		}
		if err := session.CheckEmail(ctx, email); err != nil {
			fmt.Fprintln(a.out, "Email not found. Try again.")
			continue
		}

		password, err := getPassword("Enter your password", a.out)
		if err != nil {
			return false
		}

		err = session.VerifyPassword(ctx, email, password)
		common.WipeByteArray(password)

		switch {
		case err == nil:
			fmt.Fprintln(a.out, ui.SuccessTextStyle.Render("Login successful!"))
			a.userEmail = email
			return true
		case errors.Is(err, common.ErrEmailNotFound):
			fmt.Fprintln(a.out, "Email not found. Try again.")
		case errors.Is(err, common.ErrIncorrectPassword):
			fmt.Fprintln(a.out, "Incorrect password. Try again.")
		}
	}

	fmt.Fprintln(a.out, ui.ErrorTextStyle.Render("Too many failed login attempts. Please try later."))
	return false
}

// SignUp runs the interactive registration flow. Email problems abort the
// flow (matching the original behaviour); a weak password only re-prompts
// for the password.
func (a *App) SignUp(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return
	}

	if err := a.authService.ValidateNewEmail(email); err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Fprintln(a.out, "Email already registered. Please login.")
		case errors.Is(err, common.ErrInvalidEmailFormat):
			fmt.Fprintln(a.out, "Invalid email format.")
		}
		return
	}

	password, ok := a.promptValidPassword("Enter your password")
	if !ok {
		return
	}
	defer common.WipeByteArray(password)

	question, err := getSimpleText(a.reader, "Enter a security question", a.out)
	if err != nil {
		return
	}
	answer, err := getSimpleText(a.reader, "Enter the answer to your security question", a.out)
	if err != nil {
		return
	}

	if _, err := a.authService.SignUp(ctx, email, password, question, answer); err != nil {
		a.log.Error(ctx, "sign-up failed", "error", err)
		fmt.Fprintln(a.out, ui.ErrorTextStyle.Render(fmt.Sprintf("Sign-up failed: %v", err)))
		return
	}

	fmt.Fprintln(a.out, ui.SuccessTextStyle.Render("Sign-up successful!"))
}

// ForgotPassword runs the security-question password reset flow.
func (a *App) ForgotPassword(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter your registered email for password reset", a.out)
	if err != nil {
		return
	}

	question, err := a.authService.SecurityQuestion(email)
	if err != nil {
		fmt.Fprintln(a.out, "Email not found.")
		return
	}

	fmt.Fprintf(a.out, "Security Question: %s\n", question)
	answer, err := getSimpleText(a.reader, "Answer", a.out)
	if err != nil {
		return
	}

	if err := a.authService.VerifySecurityAnswer(email, answer); err != nil {
		fmt.Fprintln(a.out, "Incorrect security answer.")
		return
	}

	newPassword, ok := a.promptValidPassword("Enter new password")
	if !ok {
		return
	}
	defer common.WipeByteArray(newPassword)

	if err := a.authService.ResetPassword(ctx, email, answer, newPassword); err != nil {
		a.log.Error(ctx, "password reset failed", "error", err)
		fmt.Fprintln(a.out, ui.ErrorTextStyle.Render(fmt.Sprintf("Password reset failed: %v", err)))
		return
	}

	fmt.Fprintln(a.out, ui.SuccessTextStyle.Render("Password reset successfully!"))
}

// promptValidPassword reads a password and re-prompts until it passes the
// strength policy. Returns ok=false only when input ends.
func (a *App) promptValidPassword(prompt string) ([]byte, bool) {
	for {
		password, err := getPassword(prompt, a.out)
		if err != nil {
			return nil, false
		}
		if err := a.authService.ValidatePassword(password); err != nil {
			common.WipeByteArray(password)
			fmt.Fprintln(a.out, "Password must be at least 8 characters long and contain one special character.")
			continue
		}
		return password, true
	}
}
