package document

// Totals carries the display figures the layout engine prints. Everything
// except ItemTaxTotal passes through from the document unmodified; in
// particular the caller's grand total is trusted verbatim and never
// reconciled against subtotal + taxes - discount.
type Totals struct {
	Subtotal          float64
	ItemTaxTotal      float64
	DocumentTaxAmount float64
	DiscountAmount    float64
	GrandTotal        float64
}

// PresentTotals pre-aggregates the item-level tax sum so the layout engine
// prints it without repeating the reduction per theme.
func PresentTotals(doc *Document) Totals {
	t := Totals{
		Subtotal:          doc.Subtotal,
		DocumentTaxAmount: doc.TaxAmount,
		DiscountAmount:    doc.Discount.Amount,
		GrandTotal:        doc.GrandTotal,
	}
	if doc.ItemTaxEnabled {
		var sum float64
		for _, item := range doc.Items {
			sum += item.TaxValue
		}
		t.ItemTaxTotal = Round2(sum)
	}
	return t
}
