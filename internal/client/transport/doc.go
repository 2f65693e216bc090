// Package transport is the single HTTP client every API call goes through.
//
// # Pipeline
//
// Each request runs the same fixed sequence of stages:
//
//	build -> authorize -> send -> unwrap              (2xx transport status)
//	                           -> handleTransportError (non-2xx or no response)
//
// authorize adds "Authorization: Bearer <token>" when the session holds a
// token and leaves the request anonymous otherwise. unwrap decodes the
// {code, data, message} envelope: codes 200 and 201 resolve with data, any
// other code is a business failure. handleTransportError turns a 401 into a
// forced logout plus a jump to the login page.
//
// # Errors
//
// Every failed request produces exactly one user notification and exactly
// one returned error: *APIError for business failures, *TransportError for
// everything else. TransportError matches ErrUnauthorized (401) and
// ErrNetwork (no response) with errors.Is.
//
// There are no retries and no request queue. In-flight requests are
// independent; a 401 on one of them clears the session while the others
// complete normally against the cleared state.
package transport
