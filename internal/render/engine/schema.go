package engine

import (
	document "billdesk/internal/document/domain"
)

// Column ids in the item grid.
const (
	colDescription = "description"
	colArea        = "area"
	colUnit        = "unit"
	colQuantity    = "quantity"
	colRate        = "rate"
	colGST         = "gst"
	colAmount      = "amount"
)

// TableSchema is the computed column set for one document: which optional
// columns exist and their fixed widths/alignments.
type TableSchema struct {
	Columns        []TableColumn
	HasMeasurement bool
	HasItemGST     bool

	ids []string
}

// widthsFor is the fixed width lookup keyed by the variant combination.
// Widths are not derived from content; each combination fills the 180mm
// printable width.
func widthsFor(hasMeasurement, hasGST bool) map[string]float64 {
	switch {
	case hasMeasurement && hasGST:
		return map[string]float64{
			colDescription: 45, colArea: 22, colUnit: 18,
			colQuantity: 18, colRate: 25, colGST: 22, colAmount: 30,
		}
	case hasMeasurement:
		return map[string]float64{
			colDescription: 45, colArea: 25, colUnit: 20,
			colQuantity: 20, colRate: 30, colAmount: 40,
		}
	case hasGST:
		return map[string]float64{
			colDescription: 70, colQuantity: 20, colRate: 30,
			colGST: 25, colAmount: 35,
		}
	default:
		return map[string]float64{
			colDescription: 70, colQuantity: 25, colRate: 40, colAmount: 45,
		}
	}
}

// ComputeSchema decides the column set for a document. Description is always
// first and left-aligned; Amount is always last, right-aligned and bold. The
// Area/Unit pair appears iff any item carries a positive measurement value;
// the GST column appears iff item-level tax is enabled on the document.
func ComputeSchema(doc *document.Document) TableSchema {
	hasMeasurement := false
	for _, item := range doc.Items {
		if item.Measurement.Value > 0 {
			hasMeasurement = true
			break
		}
	}
	hasGST := doc.ItemTaxEnabled

	widths := widthsFor(hasMeasurement, hasGST)
	s := TableSchema{HasMeasurement: hasMeasurement, HasItemGST: hasGST}

	add := func(id, header, align string, bold bool) {
		s.ids = append(s.ids, id)
		s.Columns = append(s.Columns, TableColumn{
			Header: header,
			Width:  widths[id],
			Align:  align,
			Bold:   bold,
		})
	}

	add(colDescription, "Description", "L", false)
	if hasMeasurement {
		add(colArea, "Area", "C", false)
		add(colUnit, "Unit", "C", false)
	}
	add(colQuantity, "Qty", "C", false)
	add(colRate, "Rate", "R", false)
	if hasGST {
		add(colGST, "GST", "C", false)
	}
	add(colAmount, "Amount", "R", true)
	return s
}

// BuildRows emits one row per line item matching the active column set, in
// column order. Quantities print as integers, rates and amounts with two
// decimals; the GST cell is two lines, rate then value.
func BuildRows(doc *document.Document, s TableSchema) [][]string {
	rows := make([][]string, 0, len(doc.Items))
	for _, item := range doc.Items {
		row := make([]string, 0, len(s.ids))
		for _, id := range s.ids {
			switch id {
			case colDescription:
				row = append(row, item.Description)
			case colArea:
				if item.Measurement.Value > 0 {
					row = append(row, document.FormatRate(item.Measurement.Value))
				} else {
					row = append(row, "-")
				}
			case colUnit:
				if item.Measurement.Unit != "" {
					row = append(row, item.Measurement.Unit)
				} else {
					row = append(row, "-")
				}
			case colQuantity:
				row = append(row, document.FormatQuantity(item.Quantity))
			case colRate:
				row = append(row, document.FormatAmount(item.Rate))
			case colGST:
				row = append(row, document.FormatRate(item.TaxRatePct)+"%\n"+document.FormatAmount(item.TaxValue))
			case colAmount:
				row = append(row, document.FormatAmount(item.Amount))
			}
		}
		rows = append(rows, row)
	}
	return rows
}
