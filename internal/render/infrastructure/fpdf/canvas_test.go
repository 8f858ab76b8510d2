package fpdf

import (
	"bytes"
	"strings"
	"testing"

	"billdesk/internal/render/engine"
)

const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func drawSample(c *Canvas) {
	c.AddPage()
	c.SetFont("Helvetica", "B", 14)
	c.SetTextColor(engine.Color{R: 20, G: 20, B: 20})
	c.Text(15, 20, "INVOICE")
	c.SetFillColor(engine.Color{R: 31, G: 56, B: 100})
	c.Rect(0, 0, 210, 40, true)
	c.RoundedRect(15, 50, 60, 10, 2, false)
	c.Line(15, 70, 195, 70)
}

func TestOutputDeterministic(t *testing.T) {
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		c := NewCanvas()
		drawSample(c)
		data, err := c.Output()
		if err != nil {
			t.Fatalf("output error: %v", err)
		}
		if len(data) == 0 {
			t.Fatal("expected non-empty output")
		}
		outputs = append(outputs, data)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Fatal("expected byte-identical output for identical drawing")
	}
}

func TestPageGeometry(t *testing.T) {
	c := NewCanvas()
	w, h := c.PageSize()
	if w != 210 || h != 297 {
		t.Fatalf("expected A4 210x297mm, got %vx%v", w, h)
	}
	c.AddPage()
	c.AddPage()
	if c.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", c.PageCount())
	}
}

func TestImageAcceptsPNGDataURL(t *testing.T) {
	c := NewCanvas()
	c.AddPage()
	if err := c.Image(tinyPNG, 15, 10, 24, 24); err != nil {
		t.Fatalf("expected png data URL to embed, got %v", err)
	}
	// second draw reuses the registered image
	if err := c.Image(tinyPNG, 15, 40, 24, 24); err != nil {
		t.Fatalf("expected reuse to succeed, got %v", err)
	}
	if _, err := c.Output(); err != nil {
		t.Fatalf("output error: %v", err)
	}
}

func TestImageRejectsGarbage(t *testing.T) {
	c := NewCanvas()
	c.AddPage()
	if err := c.Image("plain text", 0, 0, 10, 10); err == nil {
		t.Fatal("expected error for a non data-URL string")
	}
	if err := c.Image("data:image/png;base64,!!!!", 0, 0, 10, 10); err == nil {
		t.Fatal("expected error for bad base64")
	}
	if err := c.Image("data:image/png;base64,aGVsbG8=", 0, 0, 10, 10); err == nil {
		t.Fatal("expected error for an undecodable payload")
	}
	if err := c.Image("data:image/tiff;base64,aGVsbG8=", 0, 0, 10, 10); err == nil {
		t.Fatal("expected error for an unsupported media type")
	}
	// the document must remain usable after rejected images
	c.SetFont("Helvetica", "", 10)
	c.Text(15, 20, "still fine")
	if _, err := c.Output(); err != nil {
		t.Fatalf("expected clean output after rejected images, got %v", err)
	}
}

func tableSpec(rows int) engine.TableSpec {
	spec := engine.TableSpec{
		X: 15,
		Y: 50,
		Columns: []engine.TableColumn{
			{Header: "Description", Width: 100, Align: "L"},
			{Header: "Qty", Width: 30, Align: "C"},
			{Header: "Amount", Width: 50, Align: "R", Bold: true},
		},
		Font:           "Helvetica",
		FontSize:       8.5,
		HeaderFontSize: 9,
		HeaderFill:     engine.Color{R: 31, G: 56, B: 100},
		HeaderText:     engine.Color{R: 255, G: 255, B: 255},
		BodyText:       engine.Color{R: 33, G: 37, B: 41},
		AltRowFill:     engine.Color{R: 245, G: 247, B: 250},
		LineColor:      engine.Color{R: 222, G: 226, B: 230},
		LineHeight:     4.5,
		CellPadding:    2,
		TopMargin:      15,
		BottomMargin:   20,
	}
	for i := 0; i < rows; i++ {
		spec.Rows = append(spec.Rows, []string{"Work item", "1", "100.00"})
	}
	return spec
}

func TestTableSinglePage(t *testing.T) {
	c := NewCanvas()
	c.AddPage()
	endY := c.Table(tableSpec(5))
	if c.PageCount() != 1 {
		t.Fatalf("expected 1 page, got %d", c.PageCount())
	}
	if endY <= 50 {
		t.Fatalf("expected cursor to advance past table start, got %v", endY)
	}
}

func TestTableContinuesAcrossPages(t *testing.T) {
	c := NewCanvas()
	c.AddPage()
	endY := c.Table(tableSpec(60))
	if c.PageCount() < 2 {
		t.Fatalf("expected the grid to continue onto a new page, got %d", c.PageCount())
	}
	_, pageH := c.PageSize()
	if endY > pageH-20 {
		t.Fatalf("expected end cursor above the bottom margin, got %v", endY)
	}
}

func TestTableMultiLineCells(t *testing.T) {
	c := NewCanvas()
	c.AddPage()
	spec := tableSpec(0)
	spec.Rows = [][]string{{"Wall painting", "1", "18%\n45.00"}}
	endSingle := c.Table(tableSpec(1))

	c2 := NewCanvas()
	c2.AddPage()
	endMulti := c2.Table(spec)
	if endMulti <= endSingle {
		t.Fatalf("expected a two-line cell to grow the row: single=%v multi=%v", endSingle, endMulti)
	}
}

func TestWrapText(t *testing.T) {
	c := NewCanvas()
	c.AddPage()
	c.SetFont("Helvetica", "", 10)
	long := strings.Repeat("surface preparation ", 10)
	lines := c.WrapText(long, 60)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}
}
