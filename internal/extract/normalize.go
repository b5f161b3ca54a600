package extract

import (
	"time"

	"github.com/google/uuid"

	"billscan/internal/bill"
)

// Normalize converts one expense-analysis result plus one text-detection
// result into a fully-populated bill record. Either input may be nil,
// empty, or partially populated; undetected fields keep their defaults.
// Sparse content is never an error.
func Normalize(expense *ExpenseResult, text *TextResult) *bill.Record {
	return normalizeAt(expense, text, time.Now(), uuid.NewString())
}

func normalizeAt(expense *ExpenseResult, text *TextResult, now time.Time, billID string) *bill.Record {
	rec := &bill.Record{
		BillID:      billID,
		BillDate:    now.Format("2006-01-02"),
		BillTime:    now.Format("15:04:05"),
		ServiceName: "Unknown",
		TotalAmount: "0.00",
		Items:       []bill.LineItem{},
	}

	if expense != nil && len(expense.Documents) > 0 {
		doc := expense.Documents[0]

		// Duplicate fields of the same type resolve last-write-wins in
		// observed order.
		for _, f := range doc.SummaryFields {
			switch f.Type {
			case FieldTotal:
				rec.TotalAmount = f.Value
			case FieldInvoiceReceiptDate:
				rec.BillDate = f.Value
			}
		}

		for _, group := range doc.LineItemGroups {
			for _, lineItem := range group.LineItems {
				var item bill.LineItem
				var hasName bool
				for _, f := range lineItem.Fields {
					switch f.Type {
					case FieldItem:
						item.Name = f.Value
						hasName = true
					case FieldPrice:
						item.Price = f.Value
					case FieldQuantity:
						item.Quantity = f.Value
					}
				}
				// Items without a detected name are dropped.
				if hasName {
					rec.Items = append(rec.Items, item)
				}
			}
		}
	}

	// First two detected lines become the service name.
	if text != nil {
		var lines []string
		for _, b := range text.Blocks {
			if b.Type == BlockLine {
				lines = append(lines, b.Text)
			}
		}
		switch {
		case len(lines) >= 2:
			rec.ServiceName = lines[0] + "\n" + lines[1]
		case len(lines) == 1:
			rec.ServiceName = lines[0]
		}
	}

	return rec
}
