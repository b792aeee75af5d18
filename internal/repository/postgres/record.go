package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/mailcheck/internal/domain"
	"github.com/ignite/mailcheck/internal/service/record"
)

// RecordRepo implements record.Repository against PostgreSQL.
type RecordRepo struct{ db *sql.DB }

// NewRecordRepo creates a Postgres-backed record repository.
func NewRecordRepo(db *sql.DB) *RecordRepo { return &RecordRepo{db: db} }

func (r *RecordRepo) Create(ctx context.Context, rec *domain.EmailRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO email_records (id, email, subject, body, created_at, opened)
		VALUES ($1, $2, $3, $4, $5, FALSE)
	`, rec.ID, rec.Email, rec.Subject, rec.Body, rec.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("create record: %w", err)
	}
	return rec.ID, nil
}

func (r *RecordRepo) FindByID(ctx context.Context, id string) (*domain.EmailRecord, error) {
	rec := &domain.EmailRecord{}
	var openedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, COALESCE(subject,''), COALESCE(body,''), created_at, opened, opened_at
		FROM email_records
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.Email, &rec.Subject, &rec.Body, &rec.CreatedAt, &rec.Opened, &openedAt)
	if err == sql.ErrNoRows {
		return nil, record.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if openedAt.Valid {
		rec.OpenedAt = &openedAt.Time
	}
	return rec, nil
}

// MarkOpened flips opened on the first call only; the opened = FALSE guard
// makes re-invocation a no-op at the database, so OpenedAt never moves.
func (r *RecordRepo) MarkOpened(ctx context.Context, id string) (*domain.EmailRecord, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE email_records
		SET opened = TRUE, opened_at = $2
		WHERE id = $1 AND opened = FALSE
	`, id, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark opened: %w", err)
	}

	// Zero rows affected means either already opened or unknown id; the
	// fetch distinguishes the two.
	return r.FindByID(ctx, id)
}

func (r *RecordRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM email_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (r *RecordRepo) CountOpened(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM email_records WHERE opened = TRUE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count opened records: %w", err)
	}
	return n, nil
}

func (r *RecordRepo) ListEmailAddresses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT email FROM email_records`)
	if err != nil {
		return nil, fmt.Errorf("list record emails: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan record email: %w", err)
		}
		out = append(out, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list record emails: %w", err)
	}
	return out, nil
}
