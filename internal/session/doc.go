// Package session owns the visitor session: the single source of truth for
// who the visitor is (Identity, nil while unauthenticated), whether a
// credential operation is in flight (Loading), and the opaque credential
// the remote marketplace API issued for this visitor.
//
// The session is created anonymous on first contact, populated by a
// successful sign-in, sign-up, or profile resolution, and cleared by
// logout. Nothing outside this package and the auth service mutates the
// identity; every other component holds a read-only view.
package session
