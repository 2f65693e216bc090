// Package cli provides the interactive command-line client of the blog
// platform.
//
// It wires configuration, token storage, the session store, the router and
// the HTTP pipeline, and runs a REPL on top of them. Every view-like command
// navigates through the router first, so the login guard applies to the
// terminal exactly as it would to pages.
//
// Key features:
//   - Register / Login / Logout, profile and token status
//   - Articles: list, show, create, edit, delete
//   - Categories and tags, by id or slug
//   - Comments: list, post, like, delete
//   - File upload
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
