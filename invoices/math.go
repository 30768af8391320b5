package invoices

import (
	"math"

	"tripdesk/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineAmount computes one row's amount: price x quantity with the row
// discount applied, rounded to 2 decimals.
func LineAmount(item models.LineItem) float64 {
	return round2(item.Price * item.Quantity * (1 - item.DiscountPercentage/100))
}

// Recalculate recomputes every row amount and the aggregate totals in
// place. Client-supplied amounts are ignored; the stored record is always
// internally consistent.
func Recalculate(inv *models.Invoice) {
	base := 0.0
	for i := range inv.ProductDetails {
		inv.ProductDetails[i].Amount = LineAmount(inv.ProductDetails[i])
		base += inv.ProductDetails[i].Amount
	}

	gst := inv.AmountDetails.GSTPercentage
	discount := inv.AmountDetails.DiscountOnTotal
	inv.AmountDetails.TotalAmount = round2(base*(1+gst/100) - discount)
}
