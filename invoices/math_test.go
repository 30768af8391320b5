package invoices

import (
	"math"
	"testing"

	"tripdesk/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLineAmount(t *testing.T) {
	item := models.LineItem{Price: 100, Quantity: 2, DiscountPercentage: 10}
	if got := LineAmount(item); !almostEqual(got, 180) {
		t.Fatalf("LineAmount = %v, want 180", got)
	}
}

func TestLineAmountRounding(t *testing.T) {
	// 0.125 * 3 = 0.375, exactly representable; rounds half away to 0.38
	item := models.LineItem{Price: 0.125, Quantity: 3}
	if got := LineAmount(item); !almostEqual(got, 0.38) {
		t.Fatalf("LineAmount = %v, want 0.38", got)
	}
}

func TestLineAmountNoDiscount(t *testing.T) {
	item := models.LineItem{Price: 49.99, Quantity: 3}
	if got := LineAmount(item); !almostEqual(got, 149.97) {
		t.Fatalf("LineAmount = %v, want 149.97", got)
	}
}

func TestRecalculate(t *testing.T) {
	inv := models.Invoice{
		ProductDetails: []models.LineItem{
			{Price: 100, Quantity: 2, DiscountPercentage: 10},
			{Price: 50, Quantity: 1},
		},
		AmountDetails: models.AmountDetails{GSTPercentage: 18, DiscountOnTotal: 30},
	}

	Recalculate(&inv)

	if !almostEqual(inv.ProductDetails[0].Amount, 180) {
		t.Errorf("row 0 amount = %v, want 180", inv.ProductDetails[0].Amount)
	}
	if !almostEqual(inv.ProductDetails[1].Amount, 50) {
		t.Errorf("row 1 amount = %v, want 50", inv.ProductDetails[1].Amount)
	}
	// 230 * 1.18 - 30 = 241.40
	if !almostEqual(inv.AmountDetails.TotalAmount, 241.40) {
		t.Errorf("total = %v, want 241.40", inv.AmountDetails.TotalAmount)
	}
}

func TestRecalculateIgnoresClientAmounts(t *testing.T) {
	inv := models.Invoice{
		ProductDetails: []models.LineItem{
			{Price: 10, Quantity: 1, Amount: 9999},
		},
		AmountDetails: models.AmountDetails{TotalAmount: 9999},
	}

	Recalculate(&inv)

	if !almostEqual(inv.ProductDetails[0].Amount, 10) {
		t.Errorf("row amount = %v, want 10", inv.ProductDetails[0].Amount)
	}
	if !almostEqual(inv.AmountDetails.TotalAmount, 10) {
		t.Errorf("total = %v, want 10", inv.AmountDetails.TotalAmount)
	}
}

func TestValidateInvoice(t *testing.T) {
	inv := models.Invoice{
		CustomerName:    "Asha Travels",
		InvoiceDate:     "2024-06-01",
		DueDate:         "2024-06-15",
		CustomerGST:     "22AAAAA0000A1Z5",
		CustomerAddress: "12 MG Road",
		CustomerPhone:   "9876543210",
		CustomerEmail:   "asha@example.com",
		CustomerAadhar:  "1234-5678-9012",
		DispatchThrough: "Courier",
		ProductDetails: []models.LineItem{
			{Description: "City tour", Unit: "pkg", Quantity: 1, Price: 1500},
		},
	}
	if errs := Validate(inv); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	inv.CustomerName = ""
	inv.ProductDetails[0].Description = ""
	errs := Validate(inv)
	if _, ok := errs["customerName"]; !ok {
		t.Error("expected customerName error")
	}
	if _, ok := errs["row_description_0"]; !ok {
		t.Error("expected row_description_0 error")
	}
}

func TestValidateInvoiceEmptyRows(t *testing.T) {
	inv := models.Invoice{}
	errs := Validate(inv)
	if _, ok := errs["productDetails"]; !ok {
		t.Error("expected productDetails error when no line items")
	}
}

func TestFilterInvoices(t *testing.T) {
	invoices := []models.Invoice{
		{InvoiceNumber: 101, CustomerName: "Asha Travels", CustomerPhone: "9876543210"},
		{InvoiceNumber: 102, CustomerName: "Bharat Tours", CustomerPhone: "9123456789"},
	}

	got := Filter(invoices, "asha")
	if len(got) != 1 || got[0].InvoiceNumber != 101 {
		t.Fatalf("filter by name returned %v", got)
	}

	got = Filter(invoices, "102")
	if len(got) != 1 || got[0].CustomerName != "Bharat Tours" {
		t.Fatalf("filter by number returned %v", got)
	}

	if got = Filter(invoices, ""); len(got) != 2 {
		t.Fatalf("empty query should return all, got %d", len(got))
	}
}
