package domain

import "time"

// EmailRecord represents one outbound email persisted by the send endpoint.
//
// OpenedAt is nil until the record is first marked opened; it is set exactly
// once, together with the false→true transition of Opened. The two fields
// move together: OpenedAt is non-nil iff Opened is true.
type EmailRecord struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"createdAt"`
	Opened    bool       `json:"opened"`
	OpenedAt  *time.Time `json:"openedAt,omitempty"`
}
