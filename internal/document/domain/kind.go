package document

// SecondaryDateKind selects which of the two trailing-date sections a kind
// renders. Exactly one applies per kind, regardless of field presence.
type SecondaryDateKind int

const (
	SecondaryDue SecondaryDateKind = iota
	SecondaryValidity
)

// KindConfig is the fixed per-kind configuration table: labels, which
// optional sections are legal, and the legal status vocabulary.
type KindConfig struct {
	Title              string
	NumberLabel        string
	DateLabel          string
	SecondaryDateLabel string
	SecondaryDate      SecondaryDateKind
	PaymentBoxEligible bool
	Statuses           []string
	DefaultStatus      string
}

var kindConfigs = map[Kind]KindConfig{
	KindInvoice: {
		Title:              "INVOICE",
		NumberLabel:        "Invoice No.",
		DateLabel:          "Invoice Date",
		SecondaryDateLabel: "Due Date",
		SecondaryDate:      SecondaryDue,
		PaymentBoxEligible: true,
		Statuses:           []string{StatusDraft, StatusPending, StatusPaid, StatusCancelled},
		DefaultStatus:      StatusPending,
	},
	KindQuotation: {
		Title:              "QUOTATION",
		NumberLabel:        "Quotation No.",
		DateLabel:          "Quotation Date",
		SecondaryDateLabel: "Valid Until",
		SecondaryDate:      SecondaryValidity,
		PaymentBoxEligible: false,
		Statuses:           []string{StatusDraft, StatusSent, StatusPending, StatusAccepted, StatusRejected, StatusExpired},
		DefaultStatus:      StatusDraft,
	},
	KindReceipt: {
		Title:              "PAYMENT RECEIPT",
		NumberLabel:        "Receipt No.",
		DateLabel:          "Receipt Date",
		SecondaryDateLabel: "Payment Date",
		SecondaryDate:      SecondaryDue,
		PaymentBoxEligible: false,
		Statuses:           []string{StatusPaid},
		DefaultStatus:      StatusPaid,
	},
}

// ConfigFor returns the fixed configuration for a kind. Unknown kinds fall
// back to the invoice configuration.
func ConfigFor(k Kind) KindConfig {
	if cfg, ok := kindConfigs[k]; ok {
		return cfg
	}
	return kindConfigs[KindInvoice]
}

// LegalStatus reports whether status is in the kind's vocabulary.
func (c KindConfig) LegalStatus(status string) bool {
	for _, s := range c.Statuses {
		if s == status {
			return true
		}
	}
	return false
}
