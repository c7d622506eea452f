// Package cli provides the interactive LLMPID operator console.
//
// It wires configuration, the session store, the gateway HTTP client, local
// preferences and the services into a REPL whose commands belong to views
// (login, dashboard, change-password, external systems). Every command that
// belongs to a protected view enters it through the guard.Navigator first, so
// an operator without a credential always ends up on the login view.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
