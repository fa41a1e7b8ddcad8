package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authflow/internal/client/models"
	"github.com/dmitrijs2005/authflow/internal/client/services"
	"github.com/dmitrijs2005/authflow/internal/client/session"
	"github.com/dmitrijs2005/authflow/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// errInvalidForm is returned when a form fails field validation before any
// service call is made.
var errInvalidForm = errors.New("invalid form")

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	if u := session.Use(ctx).User(); u != nil {
		fmt.Fprintf(a.out, "Already signed in as %s. Use 'logout' first.\n", u.Email)
		return nil
	}

	form := validation.LoginForm()
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	form.SetValue(validation.FieldEmail, email)

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	form.SetValue(validation.FieldPassword, password)

	if !form.ValidateAll() {
		a.printFormError(form)
		return errInvalidForm
	}

	fmt.Fprintln(a.out, "Signing in...")
	u, err := session.Use(ctx).Login(ctx, models.LoginCredentials{Email: email, Password: password})
	if err != nil {
		fmt.Fprintln(a.out, describe("Login Failed", err))
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	return nil
}

// Signup prompts for name, email, password and confirmation and creates
// an account. The new account is signed in right away.
func (a *App) Signup(ctx context.Context) error {
	if u := session.Use(ctx).User(); u != nil {
		fmt.Fprintf(a.out, "Already signed in as %s. Use 'logout' first.\n", u.Email)
		return nil
	}

	form := validation.SignupForm()
	for _, f := range []struct{ name, prompt string }{
		{validation.FieldName, "Enter full name"},
		{validation.FieldEmail, "Enter email"},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		form.SetValue(f.name, v)
	}
	for _, f := range []struct{ name, prompt string }{
		{validation.FieldPassword, "Enter password"},
		{validation.FieldConfirmPassword, "Confirm password"},
	} {
		v, err := getPassword(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		form.SetValue(f.name, v)
	}

	if !form.ValidateAll() {
		a.printFormError(form)
		return errInvalidForm
	}

	v := form.Values()
	fmt.Fprintln(a.out, "Creating account...")
	u, err := session.Use(ctx).Signup(ctx, models.SignupCredentials{
		Name:     v[validation.FieldName],
		Email:    v[validation.FieldEmail],
		Password: v[validation.FieldPassword],
	})
	if err != nil {
		fmt.Fprintln(a.out, describe("Signup Failed", err))
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", u.Name)
	return nil
}

// Logout asks for confirmation and signs out.
func (a *App) Logout(ctx context.Context) error {
	p := session.Use(ctx)
	if !p.IsAuthenticated() {
		fmt.Fprintln(a.out, "You are not signed in.")
		return nil
	}

	ok, err := confirm(a.reader, "Are you sure you want to sign out of your account?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := p.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error: Failed to sign out. Please try again.")
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) printFormError(form *validation.Form) {
	if _, msg, found := form.FirstError(); found {
		fmt.Fprintln(a.out, "Validation Error: "+msg)
	}
}

// describe renders a session error for the user. The text depends on the
// error kind only.
func describe(title string, err error) string {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindNotFound, services.KindInvalidCredentials,
		services.KindConflict, services.KindStorage:
		return title + ": " + err.Error()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return title + ": The request was cancelled."
	}
	return title + ": An unexpected error occurred. Please try again."
}
