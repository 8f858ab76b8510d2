package engine

import (
	"errors"
	"strings"
	"testing"

	document "billdesk/internal/document/domain"
)

type textOp struct {
	page  int
	x, y  float64
	s     string
	color Color
}

// recordingCanvas is a stub drawing capability that records operations and
// simulates A4 page geometry, including grid continuation onto new pages.
type recordingCanvas struct {
	pages     int
	w, h      float64
	texts     []textOp
	fonts     []string
	images    []string
	lines     int
	tableRows int
	textColor Color
	failImage error
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{w: 210, h: 297}
}

func (rc *recordingCanvas) AddPage()                     { rc.pages++ }
func (rc *recordingCanvas) PageCount() int               { return rc.pages }
func (rc *recordingCanvas) PageSize() (float64, float64) { return rc.w, rc.h }

func (rc *recordingCanvas) SetFont(family, style string, size float64) {
	rc.fonts = append(rc.fonts, family+"/"+style)
}
func (rc *recordingCanvas) SetTextColor(c Color) { rc.textColor = c }
func (rc *recordingCanvas) SetFillColor(Color)   {}
func (rc *recordingCanvas) SetDrawColor(Color)   {}
func (rc *recordingCanvas) SetLineWidth(float64) {}
func (rc *recordingCanvas) SetAlpha(float64)     {}

func (rc *recordingCanvas) Text(x, y float64, s string) {
	rc.texts = append(rc.texts, textOp{page: rc.pages, x: x, y: y, s: s, color: rc.textColor})
}

func (rc *recordingCanvas) TextWidth(s string) float64 {
	return float64(len(s)) * 2
}

func (rc *recordingCanvas) WrapText(s string, width float64) []string {
	chunk := int(width / 2)
	if chunk < 1 {
		chunk = 1
	}
	var lines []string
	for len(s) > chunk {
		lines = append(lines, s[:chunk])
		s = s[chunk:]
	}
	return append(lines, s)
}

func (rc *recordingCanvas) Rect(x, y, w, h float64, fill bool)           {}
func (rc *recordingCanvas) RoundedRect(x, y, w, h, r float64, fill bool) {}
func (rc *recordingCanvas) Line(x1, y1, x2, y2 float64)                  { rc.lines++ }
func (rc *recordingCanvas) Circle(x, y, r float64, fill bool)            {}

func (rc *recordingCanvas) Image(data string, x, y, w, h float64) error {
	if rc.failImage != nil {
		return rc.failImage
	}
	rc.images = append(rc.images, data)
	return nil
}

func (rc *recordingCanvas) Table(t TableSpec) float64 {
	y := t.Y + t.LineHeight + 2*t.CellPadding
	rowH := t.LineHeight + 2*t.CellPadding
	for range t.Rows {
		if y+rowH > rc.h-t.BottomMargin {
			rc.AddPage()
			y = t.TopMargin + t.LineHeight + 2*t.CellPadding
		}
		y += rowH
	}
	rc.tableRows += len(t.Rows)
	return y
}

func (rc *recordingCanvas) Output() ([]byte, error) { return []byte("%PDF"), nil }

func (rc *recordingCanvas) findText(s string) (textOp, bool) {
	for _, op := range rc.texts {
		if strings.Contains(op.s, s) {
			return op, true
		}
	}
	return textOp{}, false
}

func invoiceDoc(items int) *document.Document {
	doc := &document.Document{
		Kind:          document.KindInvoice,
		Number:        "INV-42",
		Date:          "2025-01-10",
		SecondaryDate: "2025-02-10",
		Status:        document.StatusPending,
		PaymentMethod: "Bank transfer",
		Company:       document.CompanyInfo{Name: "Acme Painters", Phone: "12345", Email: "office@acme.test"},
		Client:        document.ClientInfo{Name: "R. Sharma", AddressLines: []string{"4 Low Rd"}},
		Subtotal:      1000,
		TaxEnabled:    true,
		TaxPercent:    18,
		TaxAmount:     180,
		GrandTotal:    1180,
	}
	amounts := []float64{400, 300, 300}
	for i := 0; i < items; i++ {
		doc.Items = append(doc.Items, document.LineItem{
			Description: "Line work",
			Quantity:    1,
			Rate:        amounts[i%3],
			Amount:      amounts[i%3],
		})
	}
	return doc
}

func TestStatusColors(t *testing.T) {
	th := DefaultTheme()
	cases := []struct {
		status string
		bg     Color
		black  bool
	}{
		{document.StatusPaid, th.Success, false},
		{document.StatusAccepted, th.Success, false},
		{document.StatusCancelled, th.Danger, false},
		{document.StatusRejected, th.Danger, false},
		{document.StatusPending, th.Pending, true},
		{document.StatusDraft, th.Pending, true},
		{document.StatusSent, th.Pending, false},
		{"anything-else", th.Pending, false},
	}
	for _, tc := range cases {
		bg, fg := statusColors(th, tc.status)
		if bg != tc.bg {
			t.Fatalf("%s: expected bg %+v, got %+v", tc.status, tc.bg, bg)
		}
		black := fg == Color{}
		if black != tc.black {
			t.Fatalf("%s: expected black=%v, got fg %+v", tc.status, tc.black, fg)
		}
	}
}

func TestRenderInvoiceSections(t *testing.T) {
	rc := newRecordingCanvas()
	if err := New(nil).Render(rc, invoiceDoc(3), DefaultTheme()); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if rc.pages != 1 {
		t.Fatalf("expected 1 page, got %d", rc.pages)
	}
	if _, ok := rc.findText("INVOICE"); !ok {
		t.Fatal("expected document title")
	}
	if _, ok := rc.findText("PENDING"); !ok {
		t.Fatal("expected uppercased status badge text")
	}
	if op, ok := rc.findText("1180.00"); !ok || op.page != 1 {
		t.Fatalf("expected grand total text 1180.00 on page 1, got %+v ok=%v", op, ok)
	}
	if _, ok := rc.findText("Due Date"); !ok {
		t.Fatal("expected due date section for invoices")
	}
	if _, ok := rc.findText("Valid Until"); ok {
		t.Fatal("expected no validity section for invoices")
	}
	if rc.tableRows != 3 {
		t.Fatalf("expected 3 table rows, got %d", rc.tableRows)
	}
}

func TestRenderQuotationSecondaryDate(t *testing.T) {
	doc := invoiceDoc(3)
	doc.Kind = document.KindQuotation
	doc.Status = document.StatusAccepted
	rc := newRecordingCanvas()
	if err := New(nil).Render(rc, doc, DefaultTheme()); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if _, ok := rc.findText("Valid Until"); !ok {
		t.Fatal("expected validity section for quotations")
	}
	if _, ok := rc.findText("Due Date"); ok {
		t.Fatal("expected no due date section for quotations")
	}
	if _, ok := rc.findText("Payment Method"); ok {
		t.Fatal("expected no payment box for quotations")
	}
}

func TestRenderThemeParity(t *testing.T) {
	doc := invoiceDoc(3)
	var pages, rows []int
	for _, th := range Themes() {
		rc := newRecordingCanvas()
		if err := New(nil).Render(rc, doc, th); err != nil {
			t.Fatalf("%s: render error: %v", th.ID, err)
		}
		if _, ok := rc.findText("1180.00"); !ok {
			t.Fatalf("%s: expected grand total text", th.ID)
		}
		pages = append(pages, rc.pages)
		rows = append(rows, rc.tableRows)
	}
	for i := 1; i < len(pages); i++ {
		if pages[i] != pages[0] || rows[i] != rows[0] {
			t.Fatalf("themes disagree: pages=%v rows=%v", pages, rows)
		}
	}
}

func TestRenderOverflowKeepsTrailingSectionsTogether(t *testing.T) {
	rc := newRecordingCanvas()
	if err := New(nil).Render(rc, invoiceDoc(60), DefaultTheme()); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if rc.pages < 2 {
		t.Fatalf("expected multiple pages, got %d", rc.pages)
	}
	grand, ok := rc.findText("Grand Total")
	if !ok {
		t.Fatal("expected grand total label")
	}
	thanks, ok := rc.findText("Thank you")
	if !ok {
		t.Fatal("expected footer message")
	}
	if grand.page != rc.pages || thanks.page != rc.pages {
		t.Fatalf("expected trailing sections on final page %d, got totals=%d footer=%d",
			rc.pages, grand.page, thanks.page)
	}
}

func TestRenderBadLogoStillRendersHeader(t *testing.T) {
	doc := invoiceDoc(3)
	doc.Company.Logo = "not-an-image"
	rc := newRecordingCanvas()
	if err := New(nil).Render(rc, doc, DefaultTheme()); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if len(rc.images) != 0 {
		t.Fatalf("expected no image embedded, got %v", rc.images)
	}
	if op, ok := rc.findText("Acme Painters"); !ok || op.page != 1 {
		t.Fatal("expected company name in header despite bad logo")
	}
}

func TestRenderNilInputs(t *testing.T) {
	if err := New(nil).Render(nil, invoiceDoc(1), DefaultTheme()); !errors.Is(err, ErrNilCanvas) {
		t.Fatalf("expected ErrNilCanvas, got %v", err)
	}
	if err := New(nil).Render(newRecordingCanvas(), nil, DefaultTheme()); !errors.Is(err, document.ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", err)
	}
}

func TestRenderNotesTruncated(t *testing.T) {
	doc := invoiceDoc(3)
	doc.Notes = strings.Repeat("All surfaces must be cleaned before painting. ", 20)
	th := DefaultTheme()
	rc := newRecordingCanvas()
	if err := New(nil).Render(rc, doc, th); err != nil {
		t.Fatalf("render error: %v", err)
	}
	var noteLines int
	for _, op := range rc.texts {
		if strings.Contains(op.s, "cleaned") {
			noteLines++
		}
	}
	if noteLines == 0 || noteLines > th.NotesMaxLines {
		t.Fatalf("expected 1..%d wrapped note lines, got %d", th.NotesMaxLines, noteLines)
	}
}
