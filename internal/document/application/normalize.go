package application

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	document "billdesk/internal/document/domain"
)

// Placeholders used when a raw record is missing required identity fields.
const (
	placeholderCompany = "Unnamed Business"
	placeholderClient  = "Unnamed Client"
)

// Normalize coerces a raw JSON-shaped record into a canonical Document. It is
// a total function: missing or malformed fields fall back to defaults, never
// to an error. Numeric-looking fields are best-effort parsed with 0 fallback.
func Normalize(raw map[string]any, kind document.Kind) *document.Document {
	cfg := document.ConfigFor(kind)
	doc := &document.Document{Kind: kind}

	doc.Number = firstString(raw, "number", "invoiceNumber", "quotationNumber", "receiptNumber")
	if doc.Number == "" {
		doc.Number = placeholderNumber()
	}
	doc.Date = firstString(raw, "date", "invoiceDate", "quotationDate")
	doc.SecondaryDate = firstString(raw, "dueDate", "validUntil", "expiryDate")
	doc.Status = strings.ToLower(strings.TrimSpace(firstString(raw, "status")))
	if !cfg.LegalStatus(doc.Status) {
		doc.Status = cfg.DefaultStatus
	}
	doc.PaymentMethod = firstString(raw, "paymentMethod", "method")

	doc.Company = normalizeCompany(asMap(first(raw, "company", "companyDetails")))
	doc.Client = normalizeClient(asMap(first(raw, "client", "billTo")))
	doc.Items = normalizeItems(first(raw, "items", "lineItems"))

	doc.Subtotal = document.Round2(asNumber(first(raw, "subtotal", "subTotal")))
	doc.TaxEnabled = asBool(first(raw, "gstEnabled", "taxEnabled"))
	doc.TaxPercent = asNumber(first(raw, "gstPercentage", "taxPercentage"))
	doc.TaxAmount = document.Round2(asNumber(first(raw, "gstAmount", "taxAmount")))
	doc.Discount = document.Discount{
		Type:   firstString(raw, "discountType"),
		Value:  asNumber(first(raw, "discountValue", "discount")),
		Amount: document.Round2(asNumber(first(raw, "discountAmount"))),
	}
	if doc.Discount.Type == "" {
		doc.Discount.Type = document.DiscountAmount
	}
	doc.GrandTotal = document.Round2(asNumber(first(raw, "grandTotal", "total")))

	doc.ItemTaxEnabled = asBool(first(raw, "itemGstEnabled", "itemTaxEnabled"))
	doc.Template = firstString(raw, "template", "theme")
	doc.FontTier = document.FontTier(firstString(raw, "fontTier", "fontSize"))
	doc.Notes = firstString(raw, "notes")
	doc.Terms = firstString(raw, "terms", "termsAndConditions")
	return doc
}

// NormalizeReceipt merges the three records the payment-receipt entry point
// receives: payment (figures, method, dates), project (client) and settings
// (company, presentation). Same total-function contract as Normalize.
func NormalizeReceipt(payment, project, settings map[string]any) *document.Document {
	doc := &document.Document{Kind: document.KindReceipt}

	doc.Number = firstString(payment, "receiptNumber", "number", "id")
	if doc.Number == "" {
		doc.Number = placeholderNumber()
	}
	doc.Date = firstString(payment, "date", "paidOn")
	doc.SecondaryDate = doc.Date
	doc.Status = document.StatusPaid
	doc.PaymentMethod = firstString(payment, "method", "paymentMethod")

	client := asMap(first(project, "client"))
	if client == nil {
		client = map[string]any{
			"name":    firstString(project, "clientName", "name"),
			"address": first(project, "clientAddress", "address"),
			"phone":   firstString(project, "clientPhone", "phone"),
			"email":   firstString(project, "clientEmail", "email"),
		}
	}
	doc.Client = normalizeClient(client)

	company := asMap(first(settings, "company"))
	if company == nil {
		company = settings
	}
	doc.Company = normalizeCompany(company)

	amount := document.Round2(asNumber(first(payment, "amount", "amountPaid")))
	desc := firstString(payment, "description")
	if desc == "" {
		desc = "Payment received"
		if name := firstString(project, "name", "projectName"); name != "" {
			desc += " - " + name
		}
	}
	doc.Items = []document.LineItem{{
		Description: desc,
		Quantity:    1,
		Rate:        amount,
		Amount:      amount,
	}}
	doc.Subtotal = amount
	doc.GrandTotal = amount

	doc.Template = firstString(settings, "template", "theme")
	doc.FontTier = document.FontTier(firstString(settings, "fontTier"))
	doc.Notes = firstString(payment, "notes")
	return doc
}

func placeholderNumber() string {
	return "DOC-" + strings.ToUpper(uuid.NewString()[:8])
}

func normalizeCompany(m map[string]any) document.CompanyInfo {
	c := document.CompanyInfo{
		Name:         firstString(m, "name", "companyName"),
		AddressLines: addressLines(first(m, "address", "addressLines")),
		Phone:        firstString(m, "phone"),
		Email:        firstString(m, "email"),
		GSTIN:        firstString(m, "gstin", "gstNumber"),
		Logo:         firstString(m, "logo", "logoData"),
	}
	if c.Name == "" {
		c.Name = placeholderCompany
	}
	sig := asMap(first(m, "signature", "signatureSettings"))
	c.Signature = document.SignatureSettings{
		Type: firstString(sig, "type"),
		Font: firstString(sig, "font"),
		Data: firstString(sig, "data", "image"),
		Name: firstString(sig, "name", "text"),
	}
	if c.Signature.Type == "" {
		c.Signature.Type = document.SignatureNone
	}
	return c
}

func normalizeClient(m map[string]any) document.ClientInfo {
	c := document.ClientInfo{
		Name:         firstString(m, "name", "clientName"),
		AddressLines: addressLines(first(m, "address", "addressLines")),
		Phone:        firstString(m, "phone"),
		Email:        firstString(m, "email"),
	}
	if c.Name == "" {
		c.Name = placeholderClient
	}
	return c
}

func normalizeItems(v any) []document.LineItem {
	entries := asSlice(v)
	items := make([]document.LineItem, 0, len(entries))
	for _, entry := range entries {
		m := asMap(entry)
		if m == nil {
			continue
		}
		item := document.LineItem{
			Description: firstString(m, "description", "name"),
			Quantity:    asNumber(first(m, "quantity", "qty")),
			Rate:        asNumber(first(m, "rate", "unitCost")),
			TaxRatePct:  asNumber(first(m, "gstRate", "taxRate")),
			TaxValue:    document.Round2(asNumber(first(m, "gstValue", "taxValue"))),
		}
		amount := asNumber(first(m, "amount"))
		if amount < 0 {
			amount = 0
		}
		item.Amount = document.Round2(amount)

		meas := asMap(first(m, "measurement"))
		if meas != nil {
			item.Measurement = document.Measurement{
				Value: asNumber(first(meas, "value", "area")),
				Unit:  firstString(meas, "unit"),
			}
		} else {
			item.Measurement = document.Measurement{
				Value: asNumber(first(m, "area")),
				Unit:  firstString(m, "unit"),
			}
		}
		items = append(items, item)
	}
	return items
}

func addressLines(v any) []string {
	switch t := v.(type) {
	case string:
		var lines []string
		for _, line := range strings.Split(t, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		return lines
	case []any:
		var lines []string
		for _, entry := range t {
			if s := asString(entry); s != "" {
				lines = append(lines, s)
			}
		}
		return lines
	default:
		return nil
	}
}

func first(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(m map[string]any, keys ...string) string {
	return asString(first(m, keys...))
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func asNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case string:
		// ParseFloat accepts "NaN" and "Inf" spellings without error; those
		// are not money values.
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
