// Package cli provides the interactive authflow terminal client.
//
// It wires configuration, the session store, the user directory and the
// session service behind a session.Provider, then runs a REPL whose
// commands stand in for the app screens:
//
//   - login / signup (register) / logout
//   - home and dashboard views of the signed-in account
//   - storage, which shows the persisted session artifact
//
// The provider is attached to the context passed to every command and is
// reached with session.Use. App.Run blocks until the user exits.
package cli
