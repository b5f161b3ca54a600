// Package store persists bill records to BigQuery.
package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"billscan/internal/bill"
)

// BillRepository is the persistence surface the pipeline needs. Writes are
// plain inserts keyed by bill_id; there is no existence check and no retry.
type BillRepository interface {
	InsertBill(ctx context.Context, rec *bill.Record) error
	ListRecent(ctx context.Context, limit int) ([]*bill.Record, error)
}

// BigQueryBillRepository is the concrete BillRepository backed by BigQuery.
// It holds a shared client to avoid creating a new connection per write.
type BigQueryBillRepository struct {
	client  *bigquery.Client
	dataset string
	table   string
}

// NewBigQueryBillRepository creates a repository with a shared BigQuery
// client for the given project, dataset, and table.
func NewBigQueryBillRepository(ctx context.Context, projectID, dataset, table string) (*BigQueryBillRepository, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewBigQueryBillRepository: creating client: %w", err)
	}
	return &BigQueryBillRepository{
		client:  client,
		dataset: dataset,
		table:   table,
	}, nil
}

// Close closes the BigQuery client connection.
func (r *BigQueryBillRepository) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// InsertBill stamps the record's processed timestamp and streams it into
// the bills table. One call makes one record visible under its bill_id.
func (r *BigQueryBillRepository) InsertBill(ctx context.Context, rec *bill.Record) error {
	stampProcessed(rec, time.Now())

	inserter := r.client.Dataset(r.dataset).Table(r.table).Inserter()
	if err := inserter.Put(ctx, rec); err != nil {
		return fmt.Errorf("InsertBill: inserting row: %w", err)
	}

	return nil
}

// ListRecent returns the most recently processed bill records.
func (r *BigQueryBillRepository) ListRecent(ctx context.Context, limit int) ([]*bill.Record, error) {
	if limit <= 0 {
		limit = 50
	}

	q := r.client.Query(fmt.Sprintf(`
		SELECT
			bill_id,
			bill_date,
			bill_time,
			service_name,
			total_amount,
			items,
			processed_timestamp
		FROM `+"`%s.%s`"+`
		ORDER BY processed_timestamp DESC
		LIMIT @limit
	`, r.dataset, r.table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "limit", Value: limit},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: reading query: %w", err)
	}

	var records []*bill.Record
	for {
		var rec bill.Record
		err := it.Next(&rec)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListRecent: iterating: %w", err)
		}
		records = append(records, &rec)
	}

	return records, nil
}

// stampProcessed sets the persistence timestamp, ISO-8601 formatted.
func stampProcessed(rec *bill.Record, now time.Time) {
	rec.ProcessedTimestamp = now.Format(time.RFC3339)
}

var _ BillRepository = (*BigQueryBillRepository)(nil)
