// Package cli provides the interactive releasedrop command-line client.
//
// It wires configuration, the activity database, the policy tables, an
// upload transport and the upload lifecycle, then runs a REPL in which the
// user selects a file and uploads it to a release with a shared password.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp, Presenter and runREPL for details.
package cli
