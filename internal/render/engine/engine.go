package engine

import (
	"errors"
	"log"
	"strings"

	document "billdesk/internal/document/domain"
)

// ErrNilCanvas is returned when rendering without a drawing capability.
var ErrNilCanvas = errors.New("render: nil canvas")

// Engine lays a normalized document out on a canvas, one theme per pass. The
// section order and data contract are fixed; the theme supplies every visual
// value. An Engine holds no per-call state and is safe to share; the canvas
// is not.
type Engine struct {
	logger *log.Logger
}

// New constructs an engine.
func New(logger *log.Logger) *Engine {
	return &Engine{logger: logger}
}

func fontScale(t document.FontTier) float64 {
	switch t {
	case document.FontTierSmall:
		return 0.9
	case document.FontTierLarge:
		return 1.12
	default:
		return 1.0
	}
}

// statusColors maps a status to badge background and text colors. paid and
// accepted take the success color, cancelled and rejected the danger color,
// everything else the pending color. Text is black only for pending/draft.
func statusColors(th Theme, status string) (bg, fg Color) {
	switch status {
	case document.StatusPaid, document.StatusAccepted:
		bg = th.Success
	case document.StatusCancelled, document.StatusRejected:
		bg = th.Danger
	default:
		bg = th.Pending
	}
	if status == document.StatusPending || status == document.StatusDraft {
		fg = Color{R: 0, G: 0, B: 0}
	} else {
		fg = Color{R: 255, G: 255, B: 255}
	}
	return bg, fg
}

// Render executes the fixed section pipeline for one document and theme. The
// vertical cursor is owned by a per-call layout value; the single page-break
// decision happens immediately after the item table.
func (e *Engine) Render(c Canvas, doc *document.Document, th Theme) error {
	if c == nil {
		return ErrNilCanvas
	}
	if doc == nil {
		return document.ErrNilDocument
	}

	cfg := document.ConfigFor(doc.Kind)
	tot := document.PresentTotals(doc)
	fs := fontScale(doc.FontTier)

	c.AddPage()
	l := newLayout(c)

	e.drawHeader(c, l, doc, th, cfg, fs)
	e.drawStatusBadge(c, l, doc, th, fs)
	e.drawPaymentBox(c, l, doc, th, cfg, fs)
	e.drawParties(c, l, doc, th, fs)

	endY := e.drawItemTable(c, l, doc, th, fs)
	l.y = endY + th.SectionGap

	l.breakIfNeeded(c, e.trailingEstimate(doc, tot, th))

	e.drawTotals(c, l, doc, tot, th, fs)
	e.drawNotes(c, l, doc, th, fs)
	e.drawSignature(c, l, doc, th)
	e.drawFooter(c, l, th, fs)
	return nil
}

func (e *Engine) drawHeader(c Canvas, l *layout, doc *document.Document, th Theme, cfg document.KindConfig, fs float64) {
	c.SetFillColor(th.Primary)
	c.Rect(0, 0, l.pageW, th.HeaderHeight, true)
	e.drawHeaderDecor(c, l, th)

	textX := marginLeft
	if EmbedImage(c, e.logger, "logo", doc.Company.Logo, marginLeft, 7, 24, 24) {
		textX = marginLeft + 28
	}
	white := Color{R: 255, G: 255, B: 255}
	c.SetTextColor(white)
	c.SetFont(th.HeaderFont, "B", 15*fs)
	c.Text(textX, 15, doc.Company.Name)
	c.SetFont(th.BodyFont, "", 8*fs)
	y := 20.0
	for _, line := range doc.Company.AddressLines {
		c.Text(textX, y, line)
		y += 4
	}
	if doc.Company.GSTIN != "" {
		c.Text(textX, y, "GSTIN: "+doc.Company.GSTIN)
	}

	c.SetFont(th.HeaderFont, "B", th.TitleSize*fs)
	c.Text(l.pageW-marginRight-c.TextWidth(cfg.Title), 17, cfg.Title)

	c.SetFont(th.BodyFont, "", 9*fs)
	meta := []string{
		cfg.NumberLabel + ": " + doc.Number,
		cfg.DateLabel + ": " + doc.Date,
		cfg.SecondaryDateLabel + ": " + doc.SecondaryDate,
	}
	my := 25.0
	for _, m := range meta {
		c.Text(l.pageW-marginRight-c.TextWidth(m), my, m)
		my += 5
	}

	l.y = th.HeaderHeight + th.SectionGap
}

func (e *Engine) drawHeaderDecor(c Canvas, l *layout, th Theme) {
	c.SetFillColor(th.Accent)
	switch th.Decor {
	case DecorStripes:
		for i := 0; i < 3; i++ {
			c.Rect(0, th.HeaderHeight-7+float64(i)*2.4, l.pageW, 1.1, true)
		}
	case DecorCircles:
		c.SetAlpha(0.15)
		c.Circle(l.pageW-30, th.HeaderHeight-4, 16, true)
		c.Circle(l.pageW-55, 6, 10, true)
		c.Circle(28, th.HeaderHeight+2, 8, true)
		c.SetAlpha(1)
	case DecorGradient:
		// gradient-simulating overlay: accent slabs fading left to right
		slab := l.pageW / 4
		alphas := []float64{0.22, 0.15, 0.09, 0.04}
		for i, a := range alphas {
			c.SetAlpha(a)
			c.Rect(float64(i)*slab, 0, slab, th.HeaderHeight, true)
		}
		c.SetAlpha(1)
	case DecorRule:
		c.Rect(0, th.HeaderHeight, l.pageW, 1.4, true)
	}
}

func (e *Engine) drawStatusBadge(c Canvas, l *layout, doc *document.Document, th Theme, fs float64) {
	bg, fg := statusColors(th, doc.Status)
	label := strings.ToUpper(doc.Status)

	c.SetFont(th.BodyFont, "B", 9*fs)
	w := c.TextWidth(label) + 10
	h := 8.0
	c.SetFillColor(bg)
	if th.Rounded {
		c.RoundedRect(marginLeft, l.y, w, h, 2, true)
	} else {
		c.Rect(marginLeft, l.y, w, h, true)
	}
	c.SetTextColor(fg)
	c.Text(marginLeft+5, l.y+5.5, label)
	l.advance(h + th.SectionGap)
}

func (e *Engine) drawPaymentBox(c Canvas, l *layout, doc *document.Document, th Theme, cfg document.KindConfig, fs float64) {
	if !cfg.PaymentBoxEligible {
		return
	}
	boxW := l.contentWidth()
	boxH := 14.0
	c.SetFillColor(th.Light)
	if th.Rounded {
		c.RoundedRect(marginLeft, l.y, boxW, boxH, 2, true)
	} else {
		c.Rect(marginLeft, l.y, boxW, boxH, true)
	}

	c.SetTextColor(th.TextDark)
	c.SetFont(th.BodyFont, "B", 9*fs)
	c.Text(marginLeft+4, l.y+6, "Payment Method")
	method := doc.PaymentMethod
	if method == "" {
		method = "Not specified"
	}
	c.SetFont(th.BodyFont, "", 9*fs)
	c.SetTextColor(th.TextMuted)
	c.Text(marginLeft+4, l.y+11, method)

	if cfg.SecondaryDate == document.SecondaryDue {
		label := cfg.SecondaryDateLabel + ": " + doc.SecondaryDate
		c.SetFont(th.BodyFont, "B", 9*fs)
		if doc.Status == document.StatusPending {
			c.SetTextColor(th.Danger)
		} else {
			c.SetTextColor(th.TextMuted)
		}
		c.Text(marginLeft+boxW-4-c.TextWidth(label), l.y+8.5, label)
	}
	l.advance(boxH + th.SectionGap)
}

func (e *Engine) drawParties(c Canvas, l *layout, doc *document.Document, th Theme, fs float64) {
	gap := 6.0
	boxW := (l.contentWidth() - gap) / 2

	leftLines := partyLines(doc.Client.Name, doc.Client.AddressLines, doc.Client.Phone, doc.Client.Email, "")
	rightLines := partyLines(doc.Company.Name, nil, doc.Company.Phone, doc.Company.Email, doc.Company.GSTIN)

	lines := len(leftLines)
	if len(rightLines) > lines {
		lines = len(rightLines)
	}
	boxH := 9 + float64(lines)*4.5

	draw := func(x float64, title string, content []string) {
		c.SetFillColor(th.Light)
		if th.Rounded {
			c.RoundedRect(x, l.y, boxW, boxH, 2, true)
		} else {
			c.Rect(x, l.y, boxW, boxH, true)
		}
		c.SetTextColor(th.Primary)
		c.SetFont(th.BodyFont, "B", 9*fs)
		c.Text(x+4, l.y+5.5, title)
		c.SetTextColor(th.TextDark)
		c.SetFont(th.BodyFont, "", 8.5*fs)
		y := l.y + 10.5
		for _, line := range content {
			c.Text(x+4, y, line)
			y += 4.5
		}
	}
	draw(marginLeft, "Bill To", leftLines)
	draw(marginLeft+boxW+gap, "From", rightLines)
	l.advance(boxH + th.SectionGap)
}

func partyLines(name string, address []string, phone, email, gstin string) []string {
	lines := []string{name}
	lines = append(lines, address...)
	if phone != "" {
		lines = append(lines, "Phone: "+phone)
	}
	if email != "" {
		lines = append(lines, "Email: "+email)
	}
	if gstin != "" {
		lines = append(lines, "GSTIN: "+gstin)
	}
	return lines
}

func (e *Engine) drawItemTable(c Canvas, l *layout, doc *document.Document, th Theme, fs float64) float64 {
	schema := ComputeSchema(doc)
	rows := BuildRows(doc, schema)
	return c.Table(TableSpec{
		X:              marginLeft,
		Y:              l.y,
		Columns:        schema.Columns,
		Rows:           rows,
		Font:           th.BodyFont,
		FontSize:       8.5 * fs,
		HeaderFontSize: 9 * fs,
		HeaderFill:     th.TableHeaderFill,
		HeaderText:     th.TableHeaderText,
		BodyText:       th.TextDark,
		AltRowFill:     th.TableAltFill,
		LineColor:      Color{R: 222, G: 226, B: 230},
		LineHeight:     4.5,
		CellPadding:    2,
		TopMargin:      marginTop,
		BottomMargin:   marginBottom,
	})
}

// trailingEstimate is the height budget for everything after the item table:
// totals panel, notes/terms, signature and footer.
func (e *Engine) trailingEstimate(doc *document.Document, tot document.Totals, th Theme) float64 {
	lines := 2 // subtotal and grand total
	if doc.ItemTaxEnabled && tot.ItemTaxTotal != 0 {
		lines++
	}
	if doc.TaxEnabled && tot.DocumentTaxAmount != 0 {
		lines++
	}
	if tot.DiscountAmount != 0 {
		lines++
	}
	h := float64(lines)*6.5 + 8
	if doc.Notes != "" {
		h += 7 + float64(th.NotesMaxLines)*4.2
	}
	if doc.Terms != "" {
		h += 7 + float64(th.NotesMaxLines)*4.2
	}
	if sig := doc.Company.Signature.Type; sig != "" && sig != document.SignatureNone {
		h += 28
	}
	return h + th.FooterHeight + 6
}

func (e *Engine) drawTotals(c Canvas, l *layout, doc *document.Document, tot document.Totals, th Theme, fs float64) {
	panelW := 80.0
	x := l.pageW - marginRight - panelW
	right := l.pageW - marginRight

	row := func(label, value string) {
		c.SetTextColor(th.TextMuted)
		c.SetFont(th.BodyFont, "", 9*fs)
		c.Text(x, l.y+4.5, label)
		c.SetTextColor(th.TextDark)
		c.Text(right-c.TextWidth(value), l.y+4.5, value)
		l.advance(6.5)
	}

	row("Subtotal", document.FormatAmount(tot.Subtotal))
	if doc.ItemTaxEnabled && tot.ItemTaxTotal != 0 {
		row("Item GST", document.FormatAmount(tot.ItemTaxTotal))
	}
	if doc.TaxEnabled && tot.DocumentTaxAmount != 0 {
		row("GST ("+document.FormatRate(doc.TaxPercent)+"%)", document.FormatAmount(tot.DocumentTaxAmount))
	}
	if tot.DiscountAmount != 0 {
		row("Discount", "-"+document.FormatAmount(tot.DiscountAmount))
	}

	// grand total, emphasized, always last
	barH := 9.0
	c.SetFillColor(th.Primary)
	if th.Rounded {
		c.RoundedRect(x, l.y, panelW, barH, 2, true)
	} else {
		c.Rect(x, l.y, panelW, barH, true)
	}
	white := Color{R: 255, G: 255, B: 255}
	c.SetTextColor(white)
	c.SetFont(th.BodyFont, "B", 10.5*fs)
	c.Text(x+4, l.y+6, "Grand Total")
	value := document.FormatAmount(tot.GrandTotal)
	c.Text(right-4-c.TextWidth(value), l.y+6, value)
	l.advance(barH + th.SectionGap)
}

func (e *Engine) drawNotes(c Canvas, l *layout, doc *document.Document, th Theme, fs float64) {
	panel := func(title, text string) {
		if text == "" {
			return
		}
		c.SetTextColor(th.TextDark)
		c.SetFont(th.BodyFont, "B", 9*fs)
		c.Text(marginLeft, l.y+4, title)
		l.advance(7)

		c.SetTextColor(th.TextMuted)
		c.SetFont(th.BodyFont, "", 8*fs)
		lines := c.WrapText(text, l.contentWidth()*0.65)
		if len(lines) > th.NotesMaxLines {
			lines = lines[:th.NotesMaxLines]
		}
		for _, line := range lines {
			c.Text(marginLeft, l.y+3, line)
			l.advance(4.2)
		}
		l.advance(2)
	}
	panel("Notes", doc.Notes)
	panel("Terms & Conditions", doc.Terms)
}

func (e *Engine) drawSignature(c Canvas, l *layout, doc *document.Document, th Theme) {
	sig := doc.Company.Signature
	if sig.Type == "" || sig.Type == document.SignatureNone {
		return
	}
	EmbedSignature(c, e.logger, sig, th.TextMuted, l.pageW, l.y+4)
	l.advance(28)
}

func (e *Engine) drawFooter(c Canvas, l *layout, th Theme, fs float64) {
	y := l.pageH - th.FooterHeight
	c.SetFillColor(th.Primary)
	c.Rect(0, y, l.pageW, th.FooterHeight, true)
	if th.Decor != DecorNone {
		c.SetFillColor(th.Accent)
		c.Rect(0, y-1.4, l.pageW, 1.4, true)
	}
	msg := "Thank you for your business!"
	c.SetFont(th.BodyFont, "I", 9*fs)
	c.SetTextColor(Color{R: 255, G: 255, B: 255})
	c.Text((l.pageW-c.TextWidth(msg))/2, y+th.FooterHeight/2+1.5, msg)
}
