package document

// Kind tags which business record a Document was normalized from.
type Kind string

const (
	KindInvoice   Kind = "invoice"
	KindQuotation Kind = "quotation"
	KindReceipt   Kind = "receipt"
)

// Status values across the three kinds. Each kind accepts a subset, see kind.go.
const (
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// Discount types.
const (
	DiscountAmount     = "amount"
	DiscountPercentage = "percentage"
)

// Signature types.
const (
	SignatureNone  = "none"
	SignatureImage = "image"
	SignatureText  = "text"
)

// FontTier scales every text size in a render pass.
type FontTier string

const (
	FontTierSmall  FontTier = "small"
	FontTierMedium FontTier = "medium"
	FontTierLarge  FontTier = "large"
)

// Measurement is an optional per-item quantity dimension (e.g. 12.5 sqft).
type Measurement struct {
	Value float64
	Unit  string
}

// LineItem is one billable row. Amount is authoritative as supplied by the
// caller and is never recomputed from Quantity*Rate.
type LineItem struct {
	Description string
	Measurement Measurement
	Quantity    float64
	Rate        float64
	Amount      float64
	TaxRatePct  float64
	TaxValue    float64
}

// SignatureSettings selects how the authorized-signature block is drawn.
type SignatureSettings struct {
	Type string
	Font string
	Data string
	Name string
}

// CompanyInfo is the issuing party. Logo holds a raster image data URL.
type CompanyInfo struct {
	Name         string
	AddressLines []string
	Phone        string
	Email        string
	GSTIN        string
	Logo         string
	Signature    SignatureSettings
}

// ClientInfo is the billed party.
type ClientInfo struct {
	Name         string
	AddressLines []string
	Phone        string
	Email        string
}

// Discount as supplied by the caller. Amount is the computed figure to print.
type Discount struct {
	Type   string
	Value  float64
	Amount float64
}

// Document is the canonical record driving one render call. It is built fresh
// per call, never mutated after construction, and discarded with the artifact.
type Document struct {
	Kind          Kind
	Number        string
	Date          string
	SecondaryDate string
	Status        string
	PaymentMethod string

	Company CompanyInfo
	Client  ClientInfo
	Items   []LineItem

	Subtotal   float64
	TaxEnabled bool
	TaxPercent float64
	TaxAmount  float64
	Discount   Discount
	GrandTotal float64

	ItemTaxEnabled bool
	Template       string
	FontTier       FontTier
	Notes          string
	Terms          string
}
