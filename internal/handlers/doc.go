// Package handlers serves the storefront pages and form actions. Pages are
// rendered server-side; every mutating action is a POST that answers with a
// 303 redirect, so refreshing a page never replays a form.
package handlers
