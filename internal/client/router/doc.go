// Package router maps view paths to named routes and guards every
// transition with the current login state.
//
// Path matching is delegated to gorilla/mux; the guard itself is the pure
// function Decide, so it can be tested without a router.
package router
