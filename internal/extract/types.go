package extract

// Field types recognized on summary fields and line-item fields. The
// extraction service labels every detected key/value pair with one of
// these; anything else is ignored by the normalizer.
const (
	FieldTotal              = "TOTAL"
	FieldInvoiceReceiptDate = "INVOICE_RECEIPT_DATE"
	FieldItem               = "ITEM"
	FieldPrice              = "PRICE"
	FieldQuantity           = "QUANTITY"
)

// BlockLine marks a text block that spans a full detected line. Other block
// types (words, pages) do not contribute to the service name.
const BlockLine = "LINE"

// ExpenseResult is the structured expense-analysis response for one
// document. Any of its substructures may be empty or missing; the
// normalizer treats sparse content as valid.
type ExpenseResult struct {
	Documents []ExpenseDocument `json:"documents"`
}

// ExpenseDocument groups the summary fields and line-item groups detected
// on a single document.
type ExpenseDocument struct {
	SummaryFields  []SummaryField  `json:"summary_fields"`
	LineItemGroups []LineItemGroup `json:"line_item_groups"`
}

// SummaryField is a single typed key/value pair. The same shape is reused
// for line-item fields.
type SummaryField struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LineItemGroup is a collection of purchased-item records detected
// together on the document.
type LineItemGroup struct {
	LineItems []ExpenseLineItem `json:"line_items"`
}

// ExpenseLineItem holds the typed fields detected for one purchased item.
type ExpenseLineItem struct {
	Fields []SummaryField `json:"fields"`
}

// TextResult is the plain text-detection response: typed blocks in
// detection order.
type TextResult struct {
	Blocks []TextBlock `json:"blocks"`
}

// TextBlock is a unit of detected text with its type marker.
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
