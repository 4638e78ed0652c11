// Package auth implements the credential operations of the visitor session:
// initial resolution against the marketplace profile endpoint, sign-up,
// sign-in, and logout, plus the client-side validation the credential forms
// run before any backend call is attempted.
//
// The session's Loading flag is set for exactly the duration of each
// operation and released on every return path. Logout clears the local
// identity unconditionally: the visitor's intent to log out always succeeds
// locally even when the backend cannot be reached.
package auth
