package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authflow/internal/client/session"
	"github.com/dmitrijs2005/authflow/internal/datefmt"
)

// Home prints the welcome view with the account information.
func (a *App) Home(ctx context.Context) error {
	u := session.Use(ctx).User()
	if u == nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	fmt.Fprintln(a.out, "Welcome Back!")
	fmt.Fprintf(a.out, "Hello, %s\n\n", u.Name)
	fmt.Fprintln(a.out, "Account Information")
	fmt.Fprintf(a.out, "  Full Name:     %s\n", orNA(u.Name))
	fmt.Fprintf(a.out, "  Email Address: %s\n", orNA(u.Email))
	fmt.Fprintf(a.out, "  User ID:       %s\n", orNA(u.ID))
	since := "N/A"
	if u.CreatedAt != "" {
		since = datefmt.FormatDate(u.CreatedAt)
	}
	fmt.Fprintf(a.out, "  Member Since:  %s\n", since)
	return nil
}

// Dashboard prints the profile summary.
func (a *App) Dashboard(ctx context.Context) error {
	u := session.Use(ctx).User()
	if u == nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	fmt.Fprintln(a.out, "Dashboard")
	fmt.Fprintf(a.out, "  %s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "  ID: %s\n", u.ID)
	fmt.Fprintf(a.out, "  %s (%s)\n", datefmt.MemberSince(u.CreatedAt), datefmt.FormatRelative(u.CreatedAt, a.now()))
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
