// Package record implements the send-record lifecycle.
//
// A record is created when an email is "sent", optionally transitions to
// opened exactly once, and is never deleted. The service layer holds the
// business rules; it depends on the Repository interface defined in this
// package and should never import from api/.
//
// The Postgres implementation lives in repository/postgres.
package record
