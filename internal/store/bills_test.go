package store

import (
	"testing"
	"time"

	"billscan/internal/bill"
)

func TestStampProcessed(t *testing.T) {
	rec := &bill.Record{BillID: "abc"}
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	stampProcessed(rec, now)

	if rec.ProcessedTimestamp != "2025-03-14T09:26:53Z" {
		t.Errorf("ProcessedTimestamp = %q, want ISO-8601 %q", rec.ProcessedTimestamp, "2025-03-14T09:26:53Z")
	}
}

func TestStampProcessed_Overwrites(t *testing.T) {
	rec := &bill.Record{ProcessedTimestamp: "stale"}

	stampProcessed(rec, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	if rec.ProcessedTimestamp == "stale" {
		t.Error("expected processed timestamp to be replaced at persistence time")
	}
}
