package engine

// Page geometry shared by every theme. Themes vary offsets inside sections,
// never the page frame.
const (
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
)

// layout is the cursor state of one render pass: current y and page
// dimensions. It is created per call and never shared or retained.
type layout struct {
	y     float64
	pageW float64
	pageH float64
}

func newLayout(c Canvas) *layout {
	w, h := c.PageSize()
	return &layout{y: marginTop, pageW: w, pageH: h}
}

func (l *layout) contentWidth() float64 {
	return l.pageW - marginLeft - marginRight
}

func (l *layout) advance(dy float64) {
	l.y += dy
}

// breakIfNeeded starts a new page when the estimated block height does not
// fit above the bottom margin. This is the engine's single page-break
// decision point, evaluated once after the item table.
func (l *layout) breakIfNeeded(c Canvas, estimated float64) bool {
	if l.y+estimated <= l.pageH-marginBottom {
		return false
	}
	c.AddPage()
	l.y = marginTop
	return true
}
