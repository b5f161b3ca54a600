// Package bill defines the normalized bill record produced by the
// extraction pipeline and persisted to BigQuery.
package bill

// Record is the sole persisted entity. All money and date fields are kept
// as the raw text the extraction service detected; nothing is ever parsed
// into numeric or date types downstream.
type Record struct {
	BillID      string `bigquery:"bill_id" json:"bill_id"`
	BillDate    string `bigquery:"bill_date" json:"bill_date"`
	BillTime    string `bigquery:"bill_time" json:"bill_time"`
	ServiceName string `bigquery:"service_name" json:"service_name"`
	TotalAmount string `bigquery:"total_amount" json:"total_amount"`

	// Items preserves detection order.
	Items []LineItem `bigquery:"items" json:"items"`

	// ProcessedTimestamp is set by the store adapter at persistence time,
	// ISO-8601 formatted.
	ProcessedTimestamp string `bigquery:"processed_timestamp" json:"processed_timestamp"`
}

// LineItem is a single purchased item detected on the bill. It has no
// identity of its own; it only exists embedded in a Record. Price and
// Quantity are empty when the extraction service did not detect them.
type LineItem struct {
	Name     string `bigquery:"name" json:"name"`
	Price    string `bigquery:"price" json:"price,omitempty"`
	Quantity string `bigquery:"quantity" json:"quantity,omitempty"`
}
