// Package session holds the client-side authentication state: the bearer
// token and the signed-in user's profile.
//
// The token is read from persistent storage once, when the Store is built,
// and written back only through Login and Logout. Every other reader (the
// HTTP pipeline, the navigation guard, the CLI) asks the Store.
package session
