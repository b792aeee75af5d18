package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/mailcheck/internal/analytics"
	"github.com/ignite/mailcheck/internal/pkg/httputil"
	"github.com/ignite/mailcheck/internal/pkg/logger"
	"github.com/ignite/mailcheck/internal/service/record"
	"github.com/ignite/mailcheck/internal/verify"
)

// Handlers holds the dependencies for all API endpoints. records and stats
// are nil when the store was unreachable at startup; the verify endpoint
// keeps working regardless.
type Handlers struct {
	verifier *verify.Verifier
	records  *record.Service
	stats    *analytics.Aggregator
}

// NewHandlers wires the API handlers.
func NewHandlers(verifier *verify.Verifier, records *record.Service, stats *analytics.Aggregator) *Handlers {
	return &Handlers{verifier: verifier, records: records, stats: stats}
}

type verifyRequest struct {
	Email string `json:"email"`
}

// HandleVerify runs the three verification checks against the submitted
// address. POST /api/verify
func (h *Handlers) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	// A missing or malformed body is treated the same as an empty email.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" {
		httputil.BadRequest(w, "email required")
		return
	}

	res := h.verifier.Verify(r.Context(), req.Email)
	httputil.OK(w, res)
}

type sendRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type sendResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// HandleSend persists a record of an outbound email. POST /api/send
func (h *Handlers) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" {
		httputil.BadRequest(w, "email required")
		return
	}
	if h.records == nil {
		httputil.Internal(w, "saving_failed", errStoreUnavailable)
		return
	}

	rec, err := h.records.Send(r.Context(), req.Email, req.Subject, req.Body)
	if err != nil {
		httputil.Internal(w, "saving_failed", err)
		return
	}
	httputil.OK(w, sendResponse{OK: true, ID: rec.ID})
}

// HandleOpen marks a record as opened. Idempotent. GET /api/open/{id}
func (h *Handlers) HandleOpen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.records == nil {
		httputil.Internal(w, "server_error", errStoreUnavailable)
		return
	}

	if _, err := h.records.Open(r.Context(), id); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			httputil.NotFound(w, "not_found")
			return
		}
		httputil.Internal(w, "server_error", err)
		return
	}
	httputil.OK(w, map[string]bool{"ok": true})
}

// HandleOpenPixel records an open and answers with a 1x1 transparent GIF,
// for embedding in email bodies. The pixel is always served; failures only
// show up in the log. GET /api/open/{id}/pixel
func (h *Handlers) HandleOpenPixel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.records != nil {
		if _, err := h.records.Open(r.Context(), id); err != nil && !errors.Is(err, record.ErrNotFound) {
			logger.Error("pixel open failed", "id", id, "error", err)
		}
	}
	servePixel(w)
}

// HandleAnalytics aggregates counts over all stored records. GET /api/analytics
func (h *Handlers) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		httputil.Internal(w, "server_error", errStoreUnavailable)
		return
	}

	summary, err := h.stats.Aggregate(r.Context())
	if err != nil {
		httputil.Internal(w, "server_error", err)
		return
	}
	httputil.OK(w, summary)
}

// HandleHealth reports liveness. GET /health
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"status": "ok"})
}

var errStoreUnavailable = errors.New("record store unavailable")
