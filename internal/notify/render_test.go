package notify

import (
	"strings"
	"testing"

	"billscan/internal/bill"
)

func sampleRecord() *bill.Record {
	return &bill.Record{
		BillID:      "b-1",
		BillDate:    "2025-03-12",
		BillTime:    "09:26:53",
		ServiceName: "Fresh Mart\nInvoice #123",
		TotalAmount: "₹250.00",
		Items: []bill.LineItem{
			{Name: "Milk", Price: "₹40", Quantity: "2"},
		},
	}
}

func TestSubject(t *testing.T) {
	got := Subject(sampleRecord())
	want := "Bill Processed: ₹₹250.00"
	if got != want {
		t.Errorf("Subject() = %q, want %q", got, want)
	}
}

func TestRenderHTML_Items(t *testing.T) {
	body := RenderHTML(sampleRecord())

	if !strings.Contains(body, "<li>Milk - ₹₹40 x 2</li>") {
		t.Errorf("expected item bullet in body, got:\n%s", body)
	}
	if !strings.Contains(body, "<p><strong>Total:</strong> ₹₹250.00</p>") {
		t.Errorf("expected total line in body, got:\n%s", body)
	}
	if !strings.Contains(body, "<p><strong>Date:</strong> 2025-03-12</p>") {
		t.Errorf("expected date line in body, got:\n%s", body)
	}
	if strings.Contains(body, "No items found") {
		t.Error("placeholder bullet must not render when items exist")
	}
}

func TestRenderHTML_ItemDefaults(t *testing.T) {
	rec := sampleRecord()
	rec.Items = []bill.LineItem{{Name: "Bread"}}

	body := RenderHTML(rec)

	// price defaults to 0.00 and quantity to 1 at render time only
	if !strings.Contains(body, "<li>Bread - ₹0.00 x 1</li>") {
		t.Errorf("expected defaulted item bullet, got:\n%s", body)
	}
}

func TestRenderHTML_EmptyItems(t *testing.T) {
	rec := sampleRecord()
	rec.Items = nil

	body := RenderHTML(rec)

	// exactly one placeholder bullet
	if got := strings.Count(body, "<li>"); got != 1 {
		t.Errorf("expected exactly one list entry, got %d in:\n%s", got, body)
	}
	if !strings.Contains(body, "<li>No items found</li>") {
		t.Errorf("expected placeholder bullet, got:\n%s", body)
	}
}

func TestRenderHTML_EscapesDetectedText(t *testing.T) {
	rec := sampleRecord()
	rec.ServiceName = "Bob's <Deli>"
	rec.Items = []bill.LineItem{{Name: "Fish & Chips", Price: "5<", Quantity: "1"}}

	body := RenderHTML(rec)

	if strings.Contains(body, "<Deli>") {
		t.Errorf("service name not escaped:\n%s", body)
	}
	if !strings.Contains(body, "Fish &amp; Chips") {
		t.Errorf("item name not escaped:\n%s", body)
	}
}
