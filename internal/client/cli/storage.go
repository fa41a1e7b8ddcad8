package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authflow/internal/client/session"
)

// Storage prints the persisted session artifact next to the in-memory
// state, which shows whether a restart would restore the session.
func (a *App) Storage(ctx context.Context) error {
	st := session.Use(ctx).State()
	fmt.Fprintf(a.out, "Authenticated: %t\n", st.IsAuthenticated)

	raw, ok, err := a.inspector.StoredSession(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Stored user: <unavailable>")
		a.log.Warn(ctx, "failed to read stored session", "error", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Stored user: <none>")
	} else {
		fmt.Fprintf(a.out, "Stored user: %s\n", raw)
	}

	_, ok, err = a.inspector.StoredToken(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Stored token: <none>")
		return nil
	}
	sub, err := a.inspector.TokenSubject(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Stored token: invalid")
		a.log.Warn(ctx, "stored token rejected", "error", err)
		return nil
	}
	fmt.Fprintf(a.out, "Stored token: valid for %s\n", sub)
	return nil
}
