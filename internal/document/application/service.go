package application

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	document "billdesk/internal/document/domain"
	"billdesk/internal/observability/metrics"
	"billdesk/internal/render/engine"
	"billdesk/internal/render/infrastructure/fpdf"
)

// Render modes. Both execute the identical layout pass; save additionally
// persists the artifact to the output directory.
const (
	modeSave    = "save"
	modePreview = "preview"
)

// RenderService is the entry surface the record UI calls to turn a raw
// business record into a PDF artifact. Each call owns an isolated canvas, so
// concurrent calls are safe.
type RenderService struct {
	cfg    Config
	logger *log.Logger
}

// NewRenderService constructs a service.
func NewRenderService(cfg Config, logger *log.Logger) (*RenderService, error) {
	if logger == nil {
		return nil, errors.New("render service: nil logger")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("render service: empty output dir")
	}
	return &RenderService{cfg: cfg, logger: logger}, nil
}

// GenerateDocument renders an invoice or quotation record and saves
// "{number}.pdf" under the output directory, returning the saved path.
func (s *RenderService) GenerateDocument(raw map[string]any, kind string) (string, error) {
	doc, err := s.normalizeDocument(raw, kind)
	if err != nil {
		return "", err
	}
	data, _, err := s.render(doc, modeSave)
	if err != nil {
		return "", err
	}
	return s.save(doc, data)
}

// PreviewDocument renders an invoice or quotation record and returns the
// artifact bytes without any side effect.
func (s *RenderService) PreviewDocument(raw map[string]any, kind string) ([]byte, error) {
	doc, err := s.normalizeDocument(raw, kind)
	if err != nil {
		return nil, err
	}
	data, _, err := s.render(doc, modePreview)
	return data, err
}

// GeneratePaymentReceipt renders a payment receipt and saves
// "Payment_Receipt_{number}_{date}.pdf", returning the saved path.
func (s *RenderService) GeneratePaymentReceipt(payment, project, settings map[string]any) (string, error) {
	doc := NormalizeReceipt(payment, project, settings)
	s.applyDefaults(doc)
	data, _, err := s.render(doc, modeSave)
	if err != nil {
		return "", err
	}
	return s.save(doc, data)
}

// PreviewPaymentReceipt renders a payment receipt in memory.
func (s *RenderService) PreviewPaymentReceipt(payment, project, settings map[string]any) ([]byte, error) {
	doc := NormalizeReceipt(payment, project, settings)
	s.applyDefaults(doc)
	data, _, err := s.render(doc, modePreview)
	return data, err
}

func (s *RenderService) normalizeDocument(raw map[string]any, kind string) (*document.Document, error) {
	k := document.Kind(strings.ToLower(strings.TrimSpace(kind)))
	if k != document.KindInvoice && k != document.KindQuotation {
		return nil, fmt.Errorf("%w: %q", document.ErrUnknownKind, kind)
	}
	doc := Normalize(raw, k)
	s.applyDefaults(doc)
	return doc, nil
}

// applyDefaults fills presentation and company gaps from config: records
// carry their own company block when the form supplied one, otherwise the
// configured profile applies.
func (s *RenderService) applyDefaults(doc *document.Document) {
	if doc.Template == "" {
		doc.Template = s.cfg.DefaultTheme
	}
	if doc.FontTier == "" {
		doc.FontTier = document.FontTier(s.cfg.FontTier)
	}
	company := s.cfg.Company
	if doc.Company.Name == placeholderCompany && company.Name != "" {
		doc.Company.Name = company.Name
		doc.Company.AddressLines = company.AddressLines
		doc.Company.Phone = company.Phone
		doc.Company.Email = company.Email
		doc.Company.GSTIN = company.GSTIN
	}
	if doc.Company.Logo == "" {
		doc.Company.Logo = company.Logo
	}
	if doc.Company.Signature.Type == document.SignatureNone && company.Signature.Type != "" {
		doc.Company.Signature = document.SignatureSettings(company.Signature)
	}
}

func (s *RenderService) themeFor(doc *document.Document) engine.Theme {
	if th, ok := engine.ThemeByID(doc.Template); ok {
		return th
	}
	th := engine.DefaultTheme()
	s.logger.Printf("render: unknown theme %q, using %s", doc.Template, th.ID)
	return th
}

func (s *RenderService) render(doc *document.Document, mode string) (data []byte, pages int, err error) {
	start := time.Now()
	th := s.themeFor(doc)
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultError
		}
		metrics.ObserveRender(string(doc.Kind), th.ID, mode, result, pages, time.Since(start))
	}()

	canvas := fpdf.NewCanvas()
	if err = engine.New(s.logger).Render(canvas, doc, th); err != nil {
		return nil, 0, fmt.Errorf("render %s (theme %s): %w", doc.Kind, th.ID, err)
	}
	pages = canvas.PageCount()
	data, err = canvas.Output()
	if err != nil {
		return nil, 0, fmt.Errorf("render %s (theme %s): %w", doc.Kind, th.ID, err)
	}
	return data, pages, nil
}

// Filename returns the artifact filename for a document.
func Filename(doc *document.Document) string {
	if doc.Kind == document.KindReceipt {
		return fmt.Sprintf("Payment_Receipt_%s_%s.pdf", sanitizeName(doc.Number), sanitizeName(doc.Date))
	}
	return sanitizeName(doc.Number) + ".pdf"
}

func sanitizeName(s string) string {
	if s == "" {
		return "na"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		default:
			return r
		}
	}, s)
}

func (s *RenderService) save(doc *document.Document, data []byte) (string, error) {
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.OutputDir, Filename(doc))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	s.logger.Printf("render: saved %s (%d bytes)", path, len(data))
	return path, nil
}
