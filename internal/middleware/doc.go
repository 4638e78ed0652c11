// Package middleware provides the HTTP middleware chain: request IDs,
// structured request logging, visitor session loading/write-back, and the
// role gates that apply authgate policies to routes.
package middleware
