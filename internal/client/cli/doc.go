// Package cli provides the interactive gophpass command-line client.
//
// It wires configuration and the gRPC client into a small REPL:
//
//   - forgot: request a password reset code by email
//   - reset:  set a new password for a username
//   - login:  authenticate and keep the access token in memory
//   - change: change the password of the logged-in user
//   - logout: drop the access token
//
// Passwords are read from the terminal without echo and wiped after use.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
