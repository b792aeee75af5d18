// Package analytics aggregates counts over stored send records.
//
// "Valid" here means format-valid only. The verify endpoint's three-factor
// validity is a different, stricter definition; the two are intentionally
// not unified. Aggregation re-scans the full record set on every call,
// which is fine at the volumes this service targets.
package analytics

import (
	"context"
	"fmt"

	"github.com/ignite/mailcheck/internal/verify"
)

// Source is the subset of the record store the aggregator reads.
type Source interface {
	CountAll(ctx context.Context) (int, error)
	CountOpened(ctx context.Context) (int, error)
	ListEmailAddresses(ctx context.Context) ([]string, error)
}

// Summary holds aggregate counts and derived rates. The percentage fields
// are strings with two decimal places, "0.00" when nothing has been sent.
type Summary struct {
	SentCount  int    `json:"sentCount"`
	OpenCount  int    `json:"openCount"`
	ValidCount int    `json:"validCount"`
	ValidPct   string `json:"validPct"`
	OpenRate   string `json:"openRate"`
}

// Aggregator computes summaries from a record source.
type Aggregator struct {
	src Source
}

// New creates an aggregator over the given source.
func New(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Aggregate counts sent, opened, and format-valid records and derives the
// open rate and valid percentage.
func (a *Aggregator) Aggregate(ctx context.Context) (*Summary, error) {
	total, err := a.src.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sent: %w", err)
	}
	opened, err := a.src.CountOpened(ctx)
	if err != nil {
		return nil, fmt.Errorf("count opened: %w", err)
	}
	emails, err := a.src.ListEmailAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}

	valid := 0
	for _, email := range emails {
		if verify.ValidFormat(email) {
			valid++
		}
	}

	return &Summary{
		SentCount:  total,
		OpenCount:  opened,
		ValidCount: valid,
		ValidPct:   pct(valid, total),
		OpenRate:   pct(opened, total),
	}, nil
}

func pct(part, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(part)/float64(total)*100)
}
