package entity

// LineItem represents a single billed entry on a receipt. Exactly one of
// Hours/Quantity is set depending on the billing kind; the other stays null
// in the persisted JSON. Price and Amount are stored pre-formatted with
// thousands separators, the way the receipt views display them.
type LineItem struct {
	Description string   `json:"description"`
	Hours       *float64 `json:"hours"`
	Quantity    *int     `json:"quantity"`
	UnitValue   float64  `json:"unit_value"`
	Price       string   `json:"price"`
	Amount      string   `json:"amount"`
}

// Receipt is a persisted billing record. ReceiptNo is the sole external
// identifier; it is assigned once at creation and never reassigned.
type Receipt struct {
	ReceiptNo     string     `json:"receipt_no"`
	Date          string     `json:"date"`
	FromName      string     `json:"from_name"`
	FromExtra     string     `json:"from_extra"`
	FromEmail     string     `json:"from_email"`
	Currency      string     `json:"currency"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	PaymentMethod string     `json:"payment_method"`
	Note          string     `json:"note"`
	LineItems     []LineItem `json:"line_items"`
	Total         string     `json:"total"`
}

// ReceiptPayload is the customer-editable subset of a receipt, produced by
// the form processor. Applying it to an existing receipt never touches
// ReceiptNo, Date, the issuer fields or the currency.
type ReceiptPayload struct {
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	PaymentMethod string     `json:"payment_method"`
	Note          string     `json:"note"`
	LineItems     []LineItem `json:"line_items"`
	Total         string     `json:"total"`
}

// Apply merges the payload onto the receipt field by field.
func (p *ReceiptPayload) Apply(r *Receipt) {
	r.CustomerName = p.CustomerName
	r.CustomerEmail = p.CustomerEmail
	r.PaymentMethod = p.PaymentMethod
	r.Note = p.Note
	r.LineItems = p.LineItems
	r.Total = p.Total
}
