// Package api exposes the HTTP surface: the /api JSON endpoints for verify,
// send, open, and analytics, plus the static single-page frontend with an
// index.html fallback for client-side routing.
//
// Validation errors are detected here before any domain logic runs; store
// failures are logged and mapped to generic 500 bodies.
package api
