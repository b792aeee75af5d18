package record

import (
	"context"

	"github.com/ignite/mailcheck/internal/domain"
)

// Repository defines the data access contract for send records.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new record, assigning its ID and CreatedAt, and
	// returns the ID.
	Create(ctx context.Context, rec *domain.EmailRecord) (string, error)

	// FindByID returns a single record. Returns ErrNotFound if it doesn't
	// exist.
	FindByID(ctx context.Context, id string) (*domain.EmailRecord, error)

	// MarkOpened sets opened=true and stamps OpenedAt, but only on the first
	// call; marking an already-opened record changes nothing and still
	// succeeds. Returns the record, or ErrNotFound for an unknown id.
	MarkOpened(ctx context.Context, id string) (*domain.EmailRecord, error)

	// CountAll returns the total number of records.
	CountAll(ctx context.Context) (int, error)

	// CountOpened returns the number of opened records.
	CountOpened(ctx context.Context) (int, error)

	// ListEmailAddresses returns the email field of every record, not full
	// records. Used by analytics.
	ListEmailAddresses(ctx context.Context) ([]string, error)
}
