package engine

import (
	"log"
	"strings"

	document "billdesk/internal/document/domain"
	"billdesk/internal/observability/metrics"
)

// Recognized raster data-URL prefixes. Anything else is rejected before the
// canvas is touched.
var imagePrefixes = []string{
	"data:image/png",
	"data:image/jpeg",
	"data:image/jpg",
	"data:image/gif",
}

// signatureFonts maps the caller's signature font tag to a canvas family.
// Unrecognized tags use the cursive default.
var signatureFonts = map[string]string{
	"cursive":     "Times",
	"handwritten": "Times",
	"formal":      "Times",
	"modern":      "Helvetica",
}

// EmbedImage best-effort draws a data-URL raster image. It returns false when
// the data is not a recognized image data URL or when drawing fails; a
// drawing failure is logged with the asset-role tag and swallowed. This is
// the only place the render masks a failure.
func EmbedImage(c Canvas, logger *log.Logger, role, data string, x, y, w, h float64) bool {
	recognized := false
	for _, prefix := range imagePrefixes {
		if strings.HasPrefix(data, prefix) {
			recognized = true
			break
		}
	}
	if !recognized {
		return false
	}
	if err := c.Image(data, x, y, w, h); err != nil {
		if logger != nil {
			logger.Printf("render: %s image skipped: %v", role, err)
		}
		metrics.IncAssetEmbedFailure(role)
		return false
	}
	return true
}

// EmbedSignature draws the authorized-signature block right-anchored near the
// page edge. No-op when the settings say "none". Image signatures go through
// EmbedImage; text signatures render in italic using the fixed font lookup.
func EmbedSignature(c Canvas, logger *log.Logger, s document.SignatureSettings, textColor Color, pageW, yTop float64) {
	if s.Type == "" || s.Type == document.SignatureNone {
		return
	}

	left := pageW - 70
	right := pageW - 20

	c.SetFont("Helvetica", "", 8)
	c.SetTextColor(textColor)
	c.Text(left, yTop, "Authorized Signature:")

	switch s.Type {
	case document.SignatureImage:
		EmbedImage(c, logger, "signature", s.Data, left, yTop+2, right-left, 16)
	case document.SignatureText:
		family, ok := signatureFonts[strings.ToLower(s.Font)]
		if !ok {
			family = signatureFonts["cursive"]
		}
		c.SetFont(family, "I", 14)
		c.Text(left, yTop+13, s.Name)
	}

	c.SetLineWidth(0.3)
	c.Line(left, yTop+20, right, yTop+20)
}
