// Package cli provides the interactive founderhub command-line client.
//
// It wires configuration, the credential store, the REST client and an
// interactive REPL. The cobra root command (NewRootCommand) starts the REPL;
// login, logout, status and version are also available as one-shot
// subcommands for scripts.
//
// Key features:
//   - Signup / Login / Logout with the session kept in the local store
//   - Founder directory, search and random matching
//   - Ideas with upvotes, comments and collaboration requests
//   - Rooms, including "follow", which polls a room for new messages
//   - Connections, direct messages and progress updates
//
// An expired session switches the prompt back to the logged-out state.
// See App, runREPL and the commands table for details.
package cli
