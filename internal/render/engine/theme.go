package engine

// DecorStyle tags the decorative primitive a theme uses for its header and
// footer bands. The engine interprets the tag; themes stay pure data.
type DecorStyle int

const (
	DecorNone DecorStyle = iota
	DecorStripes
	DecorCircles
	DecorGradient
	DecorRule
)

// Theme bundles the purely cosmetic parameters of one visual variant:
// palette, corner style, decoration, fonts and section offsets. Themes never
// change section order or the data contract.
type Theme struct {
	ID   string
	Name string

	Primary   Color
	Accent    Color
	Light     Color
	TextDark  Color
	TextMuted Color

	Success Color
	Danger  Color
	Pending Color

	HeaderFont string
	BodyFont   string

	Rounded bool
	Decor   DecorStyle

	HeaderHeight    float64
	TitleSize       float64
	SectionGap      float64
	NotesMaxLines   int
	FooterHeight    float64
	TableHeaderFill Color
	TableHeaderText Color
	TableAltFill    Color
}

var themes = []Theme{
	{
		ID:      "classic",
		Name:    "Classic",
		Primary: Color{R: 31, G: 56, B: 100}, Accent: Color{R: 68, G: 114, B: 196},
		Light:    Color{R: 237, G: 241, B: 249},
		TextDark: Color{R: 33, G: 37, B: 41}, TextMuted: Color{R: 108, G: 117, B: 125},
		Success: Color{R: 40, G: 167, B: 69}, Danger: Color{R: 220, G: 53, B: 69}, Pending: Color{R: 255, G: 193, B: 7},
		HeaderFont: "Helvetica", BodyFont: "Helvetica",
		Rounded: false, Decor: DecorRule,
		HeaderHeight: 42, TitleSize: 24, SectionGap: 8, NotesMaxLines: 3, FooterHeight: 14,
		TableHeaderFill: Color{R: 31, G: 56, B: 100}, TableHeaderText: Color{R: 255, G: 255, B: 255},
		TableAltFill: Color{R: 245, G: 247, B: 250},
	},
	{
		ID:      "modern",
		Name:    "Modern",
		Primary: Color{R: 13, G: 110, B: 253}, Accent: Color{R: 102, G: 16, B: 242},
		Light:    Color{R: 232, G: 240, B: 254},
		TextDark: Color{R: 24, G: 24, B: 27}, TextMuted: Color{R: 113, G: 113, B: 122},
		Success: Color{R: 25, G: 135, B: 84}, Danger: Color{R: 220, G: 53, B: 69}, Pending: Color{R: 255, G: 193, B: 7},
		HeaderFont: "Helvetica", BodyFont: "Helvetica",
		Rounded: true, Decor: DecorGradient,
		HeaderHeight: 46, TitleSize: 26, SectionGap: 8, NotesMaxLines: 2, FooterHeight: 16,
		TableHeaderFill: Color{R: 13, G: 110, B: 253}, TableHeaderText: Color{R: 255, G: 255, B: 255},
		TableAltFill: Color{R: 240, G: 246, B: 255},
	},
	{
		ID:      "minimal",
		Name:    "Minimal",
		Primary: Color{R: 52, G: 58, B: 64}, Accent: Color{R: 134, G: 142, B: 150},
		Light:    Color{R: 248, G: 249, B: 250},
		TextDark: Color{R: 33, G: 37, B: 41}, TextMuted: Color{R: 134, G: 142, B: 150},
		Success: Color{R: 40, G: 167, B: 69}, Danger: Color{R: 200, G: 35, B: 51}, Pending: Color{R: 224, G: 168, B: 0},
		HeaderFont: "Times", BodyFont: "Helvetica",
		Rounded: false, Decor: DecorNone,
		HeaderHeight: 38, TitleSize: 22, SectionGap: 7, NotesMaxLines: 2, FooterHeight: 12,
		TableHeaderFill: Color{R: 248, G: 249, B: 250}, TableHeaderText: Color{R: 33, G: 37, B: 41},
		TableAltFill: Color{R: 252, G: 252, B: 253},
	},
	{
		ID:      "corporate",
		Name:    "Corporate",
		Primary: Color{R: 0, G: 77, B: 64}, Accent: Color{R: 0, G: 121, B: 107},
		Light:    Color{R: 232, G: 245, B: 233},
		TextDark: Color{R: 27, G: 38, B: 44}, TextMuted: Color{R: 96, G: 108, B: 118},
		Success: Color{R: 46, G: 125, B: 50}, Danger: Color{R: 198, G: 40, B: 40}, Pending: Color{R: 249, G: 168, B: 37},
		HeaderFont: "Times", BodyFont: "Times",
		Rounded: false, Decor: DecorStripes,
		HeaderHeight: 44, TitleSize: 24, SectionGap: 8, NotesMaxLines: 3, FooterHeight: 14,
		TableHeaderFill: Color{R: 0, G: 77, B: 64}, TableHeaderText: Color{R: 255, G: 255, B: 255},
		TableAltFill: Color{R: 241, G: 248, B: 242},
	},
	{
		ID:      "vibrant",
		Name:    "Vibrant",
		Primary: Color{R: 214, G: 51, B: 132}, Accent: Color{R: 253, G: 126, B: 20},
		Light:    Color{R: 255, G: 240, B: 246},
		TextDark: Color{R: 33, G: 37, B: 41}, TextMuted: Color{R: 120, G: 113, B: 120},
		Success: Color{R: 32, G: 201, B: 151}, Danger: Color{R: 220, G: 53, B: 69}, Pending: Color{R: 255, G: 193, B: 7},
		HeaderFont: "Helvetica", BodyFont: "Helvetica",
		Rounded: true, Decor: DecorCircles,
		HeaderHeight: 48, TitleSize: 26, SectionGap: 9, NotesMaxLines: 2, FooterHeight: 16,
		TableHeaderFill: Color{R: 214, G: 51, B: 132}, TableHeaderText: Color{R: 255, G: 255, B: 255},
		TableAltFill: Color{R: 255, G: 245, B: 250},
	},
	{
		ID:      "elegant",
		Name:    "Elegant",
		Primary: Color{R: 73, G: 44, B: 4}, Accent: Color{R: 181, G: 136, B: 60},
		Light:    Color{R: 250, G: 246, B: 239},
		TextDark: Color{R: 43, G: 36, B: 24}, TextMuted: Color{R: 125, G: 113, B: 94},
		Success: Color{R: 70, G: 120, B: 70}, Danger: Color{R: 160, G: 55, B: 45}, Pending: Color{R: 196, G: 148, B: 50},
		HeaderFont: "Times", BodyFont: "Times",
		Rounded: true, Decor: DecorRule,
		HeaderHeight: 42, TitleSize: 23, SectionGap: 8, NotesMaxLines: 3, FooterHeight: 14,
		TableHeaderFill: Color{R: 73, G: 44, B: 4}, TableHeaderText: Color{R: 250, G: 246, B: 239},
		TableAltFill: Color{R: 250, G: 247, B: 242},
	},
}

// Themes returns the supported visual variants.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByID looks a theme up by its id.
func ThemeByID(id string) (Theme, bool) {
	for _, th := range themes {
		if th.ID == id {
			return th, true
		}
	}
	return Theme{}, false
}

// DefaultTheme is the variant used when a document names no template.
func DefaultTheme() Theme {
	return themes[0]
}
