package engine

// Color is an opaque RGB color in 0-255 components.
type Color struct {
	R, G, B int
}

// TableColumn describes one column of the item grid.
type TableColumn struct {
	Header string
	Width  float64
	Align  string // "L", "C" or "R"
	Bold   bool
}

// TableSpec is the input to the tabular-grid capability: header/body styling,
// alternating row fills, per-column width/alignment and multi-line cells
// (embedded newlines). The grid itself continues onto new pages when a row
// would cross the bottom margin; the layout engine never paginates inside it.
type TableSpec struct {
	X, Y    float64
	Columns []TableColumn
	Rows    [][]string

	Font           string
	FontSize       float64
	HeaderFontSize float64
	HeaderFill     Color
	HeaderText     Color
	BodyText       Color
	AltRowFill     Color
	LineColor      Color

	LineHeight   float64
	CellPadding  float64
	TopMargin    float64
	BottomMargin float64
}

// Canvas is the injected drawing capability the layout engine renders
// against. One canvas belongs to exactly one render call; implementations
// need not be safe for concurrent use. Coordinates are millimeters on a
// portrait page.
type Canvas interface {
	AddPage()
	PageCount() int
	PageSize() (w, h float64)

	SetFont(family, style string, size float64)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)
	SetAlpha(a float64)

	Text(x, y float64, s string)
	TextWidth(s string) float64
	WrapText(s string, width float64) []string

	Rect(x, y, w, h float64, fill bool)
	RoundedRect(x, y, w, h, r float64, fill bool)
	Line(x1, y1, x2, y2 float64)
	Circle(x, y, r float64, fill bool)

	// Image draws a data-URL raster image. A non-nil error leaves the page
	// content untouched.
	Image(data string, x, y, w, h float64) error

	// Table draws the item grid and returns the vertical coordinate just
	// below the last row, on whatever page that row landed.
	Table(t TableSpec) (endY float64)

	// Output finalizes the document and returns its bytes. Call at most once.
	Output() ([]byte, error)
}
