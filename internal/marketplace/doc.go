// Package marketplace is the HTTP client for the remote marketplace REST API.
//
// The API is an external collaborator: it owns authentication, password
// checking, and all persistent data. This package only speaks its wire
// contract and maps transport-level failures and explicit refusals onto a
// small error taxonomy (ErrUnavailable, ErrRejected) that the rest of the
// application surfaces to the user as a single human-readable message.
//
// The session credential issued by the API is treated as an opaque string
// captured from Set-Cookie headers and replayed verbatim on subsequent
// requests. Its internal structure belongs to the backend and is never
// inspected here.
package marketplace
