// Package notify renders processed bills into HTML email and dispatches
// them through the Gmail API.
package notify

import (
	"fmt"
	"html"
	"strings"

	"billscan/internal/bill"
)

// currencySymbol prefixes totals and prices in the rendered message. The
// amounts themselves are raw detected text and may already carry their own
// symbol; this mirrors how the bills are printed.
const currencySymbol = "₹"

// Subject builds the notification subject line embedding the total amount.
func Subject(rec *bill.Record) string {
	return fmt.Sprintf("Bill Processed: %s%s", currencySymbol, rec.TotalAmount)
}

// RenderHTML renders a bill record into a deterministic HTML document: a
// heading with the service name, date/time lines, a total line, and a
// bulleted item list. An empty item list renders a single placeholder
// bullet.
func RenderHTML(rec *bill.Record) string {
	var items strings.Builder
	for _, item := range rec.Items {
		price := item.Price
		if price == "" {
			price = "0.00"
		}
		quantity := item.Quantity
		if quantity == "" {
			quantity = "1"
		}
		fmt.Fprintf(&items, "<li>%s - %s%s x %s</li>",
			html.EscapeString(item.Name),
			currencySymbol,
			html.EscapeString(price),
			html.EscapeString(quantity))
	}

	itemsHTML := items.String()
	if itemsHTML == "" {
		itemsHTML = "<li>No items found</li>"
	}

	var b strings.Builder
	b.WriteString("<html>\n<body>\n")
	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(rec.ServiceName))
	fmt.Fprintf(&b, "<p><strong>Date:</strong> %s</p>\n", html.EscapeString(rec.BillDate))
	fmt.Fprintf(&b, "<p><strong>Time:</strong> %s</p>\n", html.EscapeString(rec.BillTime))
	fmt.Fprintf(&b, "<p><strong>Total:</strong> %s%s</p>\n", currencySymbol, html.EscapeString(rec.TotalAmount))
	b.WriteString("<h3>Items:</h3>\n")
	fmt.Fprintf(&b, "<ul>%s</ul>\n", itemsHTML)
	b.WriteString("</body>\n</html>\n")

	return b.String()
}
