package fpdf

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"billdesk/internal/render/engine"
)

// Creation date is pinned so identical input yields byte-identical output.
var fixedCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Canvas implements engine.Canvas on a portrait A4 gofpdf document in
// millimeter coordinates. One Canvas serves exactly one render call and is
// not safe for concurrent use.
type Canvas struct {
	pdf    *gofpdf.Fpdf
	images map[string]string
}

// NewCanvas constructs a fresh canvas. The layout engine owns pagination, so
// gofpdf's automatic page break is disabled.
func NewCanvas() *Canvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(fixedCreationDate)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &Canvas{pdf: pdf, images: make(map[string]string)}
}

func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *Canvas) PageSize() (float64, float64) {
	w, h := c.pdf.GetPageSize()
	return w, h
}

func (c *Canvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *Canvas) SetTextColor(col engine.Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *Canvas) SetFillColor(col engine.Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *Canvas) SetDrawColor(col engine.Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *Canvas) SetAlpha(a float64) {
	c.pdf.SetAlpha(a, "Normal")
}

func (c *Canvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

func (c *Canvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

func (c *Canvas) WrapText(s string, width float64) []string {
	return c.pdf.SplitText(s, width)
}

func (c *Canvas) Rect(x, y, w, h float64, fill bool) {
	c.pdf.Rect(x, y, w, h, rectStyle(fill))
}

func (c *Canvas) RoundedRect(x, y, w, h, r float64, fill bool) {
	c.pdf.RoundedRect(x, y, w, h, r, "1234", rectStyle(fill))
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *Canvas) Circle(x, y, r float64, fill bool) {
	c.pdf.Circle(x, y, r, rectStyle(fill))
}

func rectStyle(fill bool) string {
	if fill {
		return "F"
	}
	return "D"
}

// Image registers and draws a data-URL raster image. The payload is fully
// decoded up front so a corrupt image errors here instead of poisoning the
// document's sticky error state.
func (c *Canvas) Image(data string, x, y, w, h float64) error {
	name, ok := c.images[data]
	if !ok {
		imgType, raw, err := decodeDataURL(data)
		if err != nil {
			return err
		}
		if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return fmt.Errorf("fpdf: undecodable %s image: %w", strings.ToLower(imgType), err)
		}
		name = fmt.Sprintf("img%d", len(c.images)+1)
		c.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(raw))
		if c.pdf.Err() {
			err := c.pdf.Error()
			c.pdf.ClearError()
			return err
		}
		c.images[data] = name
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
	if c.pdf.Err() {
		err := c.pdf.Error()
		c.pdf.ClearError()
		return err
	}
	return nil
}

func decodeDataURL(data string) (imgType string, raw []byte, err error) {
	comma := strings.IndexByte(data, ',')
	if comma < 0 {
		return "", nil, errors.New("fpdf: malformed data URL")
	}
	header := data[:comma]
	switch {
	case strings.HasPrefix(header, "data:image/png"):
		imgType = "PNG"
	case strings.HasPrefix(header, "data:image/jpeg"), strings.HasPrefix(header, "data:image/jpg"):
		imgType = "JPEG"
	case strings.HasPrefix(header, "data:image/gif"):
		imgType = "GIF"
	default:
		return "", nil, errors.New("fpdf: unsupported image media type")
	}
	if !strings.HasSuffix(header, ";base64") {
		return "", nil, errors.New("fpdf: data URL is not base64 encoded")
	}
	raw, err = base64.StdEncoding.DecodeString(data[comma+1:])
	if err != nil {
		return "", nil, fmt.Errorf("fpdf: image payload: %w", err)
	}
	return imgType, raw, nil
}

// Table draws the item grid: styled header row, alternating body fills,
// per-column width/alignment, multi-line cells. Rows that would cross the
// bottom margin continue on a new page with the header repeated.
func (c *Canvas) Table(t engine.TableSpec) float64 {
	_, pageH := c.pdf.GetPageSize()
	y := c.drawTableHeader(t, t.Y)

	for i, row := range t.Rows {
		cells := make([][]string, len(t.Columns))
		rowLines := 1
		for j := range t.Columns {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			lines := c.splitCell(t, t.Columns[j], cell)
			cells[j] = lines
			if len(lines) > rowLines {
				rowLines = len(lines)
			}
		}
		rowH := float64(rowLines)*t.LineHeight + 2*t.CellPadding

		if y+rowH > pageH-t.BottomMargin {
			c.pdf.AddPage()
			y = c.drawTableHeader(t, t.TopMargin)
		}

		if i%2 == 1 {
			c.SetFillColor(t.AltRowFill)
			c.pdf.Rect(t.X, y, tableWidth(t), rowH, "F")
		}

		x := t.X
		for j, col := range t.Columns {
			style := ""
			if col.Bold {
				style = "B"
			}
			c.pdf.SetFont(t.Font, style, t.FontSize)
			c.SetTextColor(t.BodyText)
			c.drawCell(t, col, cells[j], x, y)
			x += col.Width
		}

		c.SetDrawColor(t.LineColor)
		c.pdf.SetLineWidth(0.15)
		c.pdf.Line(t.X, y+rowH, t.X+tableWidth(t), y+rowH)
		y += rowH
	}
	return y
}

func (c *Canvas) drawTableHeader(t engine.TableSpec, y float64) float64 {
	headerH := t.LineHeight + 2*t.CellPadding
	c.SetFillColor(t.HeaderFill)
	c.pdf.Rect(t.X, y, tableWidth(t), headerH, "F")
	c.pdf.SetFont(t.Font, "B", t.HeaderFontSize)
	c.SetTextColor(t.HeaderText)
	x := t.X
	for _, col := range t.Columns {
		c.drawCell(t, col, []string{col.Header}, x, y)
		x += col.Width
	}
	return y + headerH
}

func (c *Canvas) splitCell(t engine.TableSpec, col engine.TableColumn, cell string) []string {
	var lines []string
	for _, part := range strings.Split(cell, "\n") {
		if part == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, c.pdf.SplitText(part, col.Width-2*t.CellPadding)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func (c *Canvas) drawCell(t engine.TableSpec, col engine.TableColumn, lines []string, x, y float64) {
	for i, line := range lines {
		lineY := y + t.CellPadding + float64(i)*t.LineHeight + t.LineHeight*0.75
		var lineX float64
		switch col.Align {
		case "C":
			lineX = x + (col.Width-c.pdf.GetStringWidth(line))/2
		case "R":
			lineX = x + col.Width - t.CellPadding - c.pdf.GetStringWidth(line)
		default:
			lineX = x + t.CellPadding
		}
		c.pdf.Text(lineX, lineY, line)
	}
}

func tableWidth(t engine.TableSpec) float64 {
	var w float64
	for _, col := range t.Columns {
		w += col.Width
	}
	return w
}

// Output finalizes the document. gofpdf closes the document on output, so
// this is a once-only call.
func (c *Canvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
