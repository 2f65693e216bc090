// Package tokens persists the access token (and refresh token) of the blog
// client between runs.
//
// # Layout
//
// Two keys are kept per scope: "token" and "refresh_token". The scope is the
// API origin (scheme://host:port), so tokens issued by different backends
// never leak into each other, the same way browser storage is bound to an
// origin.
//
// # Writers
//
// Only the session store writes here: SetToken on login, Remove on logout.
// Remove deletes both keys together. An absent key reads as "" with a nil
// error.
//
// # Backends
//
//   - SQLiteStorage: a local file (default), schema managed by goose.
//   - RedisStorage:  a shared Redis instance, for hosts that should share a
//     login.
package tokens
