// Package dispatch sequences the bill pipeline for batches of
// storage-creation notifications: extract, persist, notify, with
// per-record failure isolation.
package dispatch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"billscan/internal/bill"
	"billscan/internal/extract"
	"billscan/internal/storage"
)

// Notification describes a single object-creation occurrence in storage.
// Key arrives percent-encoded, with '+' standing for a space.
type Notification struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// Event is an ordered batch of notifications.
type Event struct {
	Records []Notification `json:"records"`
}

// Ack is the fixed acknowledgment returned for every batch, independent of
// per-record outcomes.
type Ack struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

const ackBody = "Bill(s) processed successfully!"

// State is a record's terminal processing state. Intermediate states
// (received, extracted, persisted, notified) exist only inside
// processRecord; a record always ends done or failed.
type State string

const (
	StateReceived  State = "received"
	StateExtracted State = "extracted"
	StatePersisted State = "persisted"
	StateNotified  State = "notified"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// Result is the outcome of one notification.
type Result struct {
	Bucket string
	Key    string
	BillID string
	State  State
	// Notified reports whether the email actually went out; a false value
	// with State done means the send failed and was swallowed.
	Notified bool
	// Err is the StageError that terminated the record; nil when done.
	Err error
	// NotifyErr is the swallowed email failure, never terminal.
	NotifyErr error
}

// Analyzer runs the two independent extraction calls for one document.
type Analyzer interface {
	AnalyzeExpense(ctx context.Context, doc []byte, mimeType string) (*extract.ExpenseResult, error)
	DetectText(ctx context.Context, doc []byte, mimeType string) (*extract.TextResult, error)
}

// BillStore is the write-side persistence surface the dispatcher needs.
type BillStore interface {
	InsertBill(ctx context.Context, rec *bill.Record) error
}

// Mailer dispatches the notification email for one record.
type Mailer interface {
	Notify(ctx context.Context, rec *bill.Record) error
}

// Dispatcher holds the collaborator handles for the pipeline. All clients
// are constructed once at process start and injected here; the dispatcher
// itself keeps no state across notifications.
type Dispatcher struct {
	objects  storage.ObjectStore
	analyzer Analyzer
	bills    BillStore
	mailer   Mailer
	log      zerolog.Logger
}

// New creates a dispatcher from its collaborators.
func New(objects storage.ObjectStore, analyzer Analyzer, bills BillStore, mailer Mailer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		objects:  objects,
		analyzer: analyzer,
		bills:    bills,
		mailer:   mailer,
		log:      log,
	}
}

// HandleEvent processes every notification in the batch and returns the
// fixed success acknowledgment. Individual record failures are logged and
// dropped; the caller never retries.
func (d *Dispatcher) HandleEvent(ctx context.Context, event Event) Ack {
	d.Process(ctx, event)
	return Ack{StatusCode: 200, Body: ackBody}
}

// Process runs the batch strictly sequentially and returns per-record
// results. Exposed separately from HandleEvent so callers and tests can
// inspect outcomes.
func (d *Dispatcher) Process(ctx context.Context, event Event) []Result {
	results := make([]Result, 0, len(event.Records))
	for _, n := range event.Records {
		res := d.processRecord(ctx, n)

		switch {
		case res.Err != nil:
			d.log.Error().
				Err(res.Err).
				Str("bucket", res.Bucket).
				Str("key", res.Key).
				Msg("Record processing failed")
		case res.NotifyErr != nil:
			d.log.Warn().
				Err(res.NotifyErr).
				Str("bucket", res.Bucket).
				Str("key", res.Key).
				Str("bill_id", res.BillID).
				Msg("Email notification failed; record already persisted")
		default:
			d.log.Info().
				Str("bucket", res.Bucket).
				Str("key", res.Key).
				Str("bill_id", res.BillID).
				Msg("Bill processed")
		}

		results = append(results, res)
	}
	return results
}

// processRecord walks one notification through
// received → extracted → persisted → notified → done. Any stage error
// short-circuits to failed for this record only.
func (d *Dispatcher) processRecord(ctx context.Context, n Notification) Result {
	res := Result{Bucket: n.Bucket, Key: n.Key, State: StateReceived}

	key, err := url.QueryUnescape(n.Key)
	if err != nil {
		return fail(res, StageReceive, fmt.Errorf("decoding object key %q: %w", n.Key, err))
	}
	res.Key = key

	if err := d.objects.Exists(ctx, n.Bucket, key); err != nil {
		return fail(res, StageReceive, err)
	}

	doc, err := d.objects.Download(ctx, n.Bucket, key)
	if err != nil {
		return fail(res, StageExtract, err)
	}

	mimeType := extract.MIMETypeForObject(key)

	expense, err := d.analyzer.AnalyzeExpense(ctx, doc, mimeType)
	if err != nil {
		return fail(res, StageExtract, fmt.Errorf("extraction failed: %w", err))
	}
	text, err := d.analyzer.DetectText(ctx, doc, mimeType)
	if err != nil {
		return fail(res, StageExtract, fmt.Errorf("extraction failed: %w", err))
	}

	rec := extract.Normalize(expense, text)
	res.BillID = rec.BillID
	res.State = StateExtracted

	if err := d.bills.InsertBill(ctx, rec); err != nil {
		return fail(res, StagePersist, err)
	}
	res.State = StatePersisted

	// Persistence already succeeded; the email is best-effort.
	if err := d.mailer.Notify(ctx, rec); err != nil {
		res.NotifyErr = stageErr(StageNotify, err)
	} else {
		res.Notified = true
		res.State = StateNotified
	}

	res.State = StateDone
	return res
}

func fail(res Result, stage Stage, err error) Result {
	res.State = StateFailed
	res.Err = stageErr(stage, err)
	return res
}
